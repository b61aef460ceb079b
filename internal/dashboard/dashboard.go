// Package dashboard computes the headcount and payroll cards of the home page
// from the employee list.
package dashboard

import (
	"context"
	"time"

	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const recentHireWindow = 30 * 24 * time.Hour

type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	// Percentages of Total, rounded to whole numbers.
	ActivePercent   int64 `json:"activePercent"`
	InactivePercent int64 `json:"inactivePercent"`
	// MonthlyCost sums the salaries of active employees.
	MonthlyCost  decimal.Decimal `json:"monthlyCost"`
	RecentHires  int             `json:"recentHires"`
	Departments  []Department    `json:"departments"`
	Stale        bool            `json:"stale"`
	StaleWarning string          `json:"warning,omitempty"`
}

type Department struct {
	Name        string          `json:"name"`
	Active      int             `json:"active"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	employees employee.Provider
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees employee.Provider, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{employees: employees, now: time.Now, logger: l}
}

// Summary answers from the last loaded list, flagged stale, when a refresh fails.
func (s *service) Summary(ctx context.Context) (Summary, error) {
	svc, err := s.employees.Employees(ctx)
	if err != nil {
		return Summary{}, err
	}

	list, err := svc.List(ctx)
	if err != nil && list == nil {
		return Summary{}, err
	}

	sum := Compute(list, s.now())
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("dashboard built from stale employees", zap.Error(err))
		sum.Stale = true
		sum.StaleWarning = apperror.ToHTTP(err).Message
	}
	return sum, nil
}

// Compute is pure; now anchors the recent hire window.
func Compute(list []employee.Employee, now time.Time) Summary {
	active, inactive := lifecycle.Partition(list, func(e employee.Employee) bool { return e.IsActive })

	sum := Summary{
		Total:       len(list),
		Active:      len(active),
		Inactive:    len(inactive),
		MonthlyCost: decimal.Zero,
		Departments: []Department{},
	}
	if sum.Total > 0 {
		total := decimal.NewFromInt(int64(sum.Total))
		sum.ActivePercent = decimal.NewFromInt(int64(sum.Active)).Mul(decimal.NewFromInt(100)).Div(total).Round(0).IntPart()
		sum.InactivePercent = 100 - sum.ActivePercent
	}

	index := map[string]int{}
	cutoff := now.Add(-recentHireWindow)
	for _, e := range active {
		sum.MonthlyCost = sum.MonthlyCost.Add(e.Salary)

		i, ok := index[e.Department]
		if !ok {
			i = len(sum.Departments)
			index[e.Department] = i
			sum.Departments = append(sum.Departments, Department{Name: e.Department, MonthlyCost: decimal.Zero})
		}
		sum.Departments[i].Active++
		sum.Departments[i].MonthlyCost = sum.Departments[i].MonthlyCost.Add(e.Salary)

		if hired, err := time.Parse(time.DateOnly, e.HireDate); err == nil && !hired.Before(cutoff) && !hired.After(now) {
			sum.RecentHires++
		}
	}
	return sum
}

package response

import (
	"strconv"
	"time"

	"github.com/OblivionLi/salaries-management-system/internal/models"
)

// Messages surfaced inside shaped responses.
const (
	MsgNoSalaries = "Couldn't find any salary. Add a salary first."
	MsgError      = "An error occurred."
)

// SalaryView is the transient API projection of a salary record.
type SalaryView struct {
	SalaryID   int64      `json:"salaryId"`
	Salary     float64    `json:"salary"`
	Employee   string     `json:"employee"`
	SalaryDate *time.Time `json:"salaryDate"`
	Message    string     `json:"message,omitempty"`
	Links      []Link     `json:"links"`
}

// Envelope bundles a list of salary views with navigation links.
type Envelope struct {
	Data  []SalaryView `json:"data"`
	Links []Link       `json:"links"`
}

// NewSalaryView projects a persisted record into a view, decorated with the
// full action link set for the given request method.
func NewSalaryView(salary *models.Salary, method, version string) SalaryView {
	return SalaryView{
		SalaryID:   salary.ID,
		Salary:     salary.Salary,
		Employee:   salary.Employee,
		SalaryDate: salary.SalaryDate,
		Links:      ActionLinks(method, version, strconv.FormatInt(salary.ID, 10)),
	}
}

// ErrorView is the shaped view returned when a single-record operation fails.
// The view itself carries the sentinel id; the link still points at the
// record that was being operated on.
func ErrorView(id int64, rel, method, version string) SalaryView {
	return SalaryView{
		SalaryID: -1,
		Salary:   0,
		Employee: "-",
		Message:  MsgError,
		Links:    ErrorLink(rel, method, version, strconv.FormatInt(id, 10)),
	}
}

// SentinelView represents "no salaries exist" within the normal response
// shape, pointing the client at the add action.
func SentinelView(version string) SalaryView {
	return SalaryView{
		SalaryID: -1,
		Salary:   0,
		Employee: "-",
		Message:  MsgNoSalaries,
		Links:    []Link{{Rel: "self", Href: "/api/" + version + "/salaries", Method: "POST", Version: version}},
	}
}

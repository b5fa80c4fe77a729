package enrollment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

// Statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	Statuses = []string{StatusPending, StatusApproved, StatusRejected}

	OrderingFields  = map[string]bool{"created_at": true, "full_name": true, "status": true}
	defaultOrdering = core.DBOrdering{Field: "created_at"}
)

type Enrollment struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CourseName string    `json:"course_name"` // snapshot, not a reference to a Course
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"` // UTC
}

func (e Enrollment) IsApproved() bool { return e.Status == StatusApproved }

// NewEnrollment is the payload of the public intake form.
type NewEnrollment struct {
	FullName string `json:"full_name" validate:"required,min=2,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=20"`
	Category string `json:"category" validate:"required"`
	ClassID  string `json:"course_id" validate:"required"` // id of a Class of Category
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	ne.FullName = core.CleanText(ne.FullName)
	ne.Email = core.CleanString(ne.Email, true /* lower */)
	ne.Phone = core.CleanString(ne.Phone)
	ne.Category = core.CleanString(ne.Category)
	ne.ClassID = core.CleanString(ne.ClassID)
	return validate.Struct(ne)
}

// Notice is the content of the administrative notification of a new enrollment.
// Fields are relayed as received; only delivery can fail.
type Notice struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Course   string `json:"courseId"`
}

func (n *Notice) Clean() {
	n.FullName = core.CleanText(n.FullName)
	n.Email = core.CleanString(n.Email, true /* lower */)
	n.Phone = core.CleanText(n.Phone)
	n.Course = core.CleanText(n.Course)
}

type QueryFilter struct {
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func (qf *QueryFilter) Validate(validate *validator.Validate) error {
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	return validate.Struct(qf)
}

// Outcomes of an approval
const (
	OutcomeApproved                   = "approved"
	OutcomeAlreadyApproved            = "already_approved"
	OutcomeApprovedNotificationFailed = "approved_notification_failed"
)

// ApprovalResult tells how an approval went. NotificationErr is only set
// when Outcome is OutcomeApprovedNotificationFailed.
type ApprovalResult struct {
	Enrollment      Enrollment
	Outcome         string
	NotificationErr error
}

func (res ApprovalResult) Message() string {
	switch res.Outcome {
	case OutcomeAlreadyApproved:
		return "Enrollment is already approved."
	case OutcomeApprovedNotificationFailed:
		return "Enrollment approved, but failed to send email."
	default:
		return "Enrollment approved and email sent successfully."
	}
}

package v1

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

const (
	dueDateMinLead = 5 * time.Minute

	tagNotBlank      = "notblank"
	tagDueMinLead    = "due_min_lead"
	tagDueMaxHorizon = "due_max_horizon"
	tagOwnerID       = "owner_id"
)

// Field names as reported to clients, keyed by struct field name.
var validationFieldNames = map[string]string{
	"Title":       "Title",
	"Description": "Description",
	"DueDate":     "DueDate",
	"UserID":      "UserId",
}

var validationMessages = map[string]map[string][]string{
	"Title": {
		tagNotBlank: {"Title is required"},
		"min":       {"Title must be at least 3 characters"},
		"max":       {"Title must not exceed 200 characters"},
	},
	"Description": {
		"max": {"Description must not exceed 1000 characters"},
	},
	"DueDate": {
		"required":       {"Due date is required"},
		tagDueMinLead:    {"Due date must be at least 5 minutes in the future"},
		tagDueMaxHorizon: {"Due date must be within 1 year"},
	},
	"UserID": {
		"required": {"User ID is required", "Invalid User ID format"},
		tagOwnerID: {"Invalid User ID format"},
	},
}

// requestValidator checks inbound payloads before they reach the
// services. Rules of one field stop at the first violation; all fields
// are always checked.
type requestValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

func newRequestValidator(now func() time.Time) (*requestValidator, error) {
	v := &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	rules := map[string]validator.Func{
		tagNotBlank:      isNotBlank,
		tagDueMinLead:    v.isAfterMinLead,
		tagDueMaxHorizon: v.isWithinHorizon,
		tagOwnerID:       isOwnerID,
	}
	for tag, fn := range rules {
		err := v.validate.RegisterValidation(tag, fn)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// ValidateCreateTask returns a validation *services.Error listing every
// violated rule, or nil.
func (v *requestValidator) ValidateCreateTask(req *createTaskRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string][]string)
	for _, fe := range fieldErrs {
		name, ok := validationFieldNames[fe.StructField()]
		if !ok {
			name = fe.StructField()
		}
		fields[name] = append(fields[name], messagesFor(fe)...)
	}
	return services.NewValidationErrorFromFields(fields)
}

func messagesFor(fe validator.FieldError) []string {
	// The zero uuid counts as a missing owner.
	if fe.StructField() == "UserID" && fe.Tag() == tagOwnerID {
		if s, ok := fe.Value().(string); ok && isNilUUID(s) {
			return validationMessages["UserID"]["required"]
		}
	}

	if messages, ok := validationMessages[fe.StructField()][fe.Tag()]; ok {
		return messages
	}
	return []string{fe.Error()}
}

func isNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func (v *requestValidator) isAfterMinLead(fl validator.FieldLevel) bool {
	due, ok := fl.Field().Interface().(time.Time)
	return ok && due.After(v.now().Add(dueDateMinLead))
}

func (v *requestValidator) isWithinHorizon(fl validator.FieldLevel) bool {
	due, ok := fl.Field().Interface().(time.Time)
	return ok && due.Before(v.now().AddDate(1, 0, 0))
}

func isOwnerID(fl validator.FieldLevel) bool {
	id, err := uuid.Parse(fl.Field().String())
	return err == nil && id != uuid.Nil
}

func isNilUUID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id == uuid.Nil
}

package validation

func NewErrors() *Errors {
	return &Errors{
		FieldErrors: make(map[string][]string),
		FormErrors:  make([]string, 0),
	}
}

func (e *Errors) AddFieldError(field string, message string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

func (e *Errors) AddFormError(message string) {
	e.FormErrors = append(e.FormErrors, message)
}

func (e *Errors) Empty() bool {
	return len(e.FieldErrors) == 0 && len(e.FormErrors) == 0
}

func Report(reporter Reporter, fieldErrors []FieldError) {
	for _, fieldError := range fieldErrors {
		reporter.AddFieldError(fieldError.Field, fieldError.Message)
	}
}

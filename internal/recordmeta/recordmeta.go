// Package recordmeta describes record types: which fields a new-record form
// shows, in what order, and what values a picklist allows.
package recordmeta

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMetadata marks a record type document that cannot be used.
var ErrInvalidMetadata = errors.New("invalid record metadata")

// FieldType controls how a form renders and validates a field.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeLookup   FieldType = "lookup"
	TypePicklist FieldType = "picklist"
	TypeCurrency FieldType = "currency"
)

// Field is one entry of a record type's layout.
type Field struct {
	APIName  string    `yaml:"api_name"`
	Label    string    `yaml:"label"`
	Type     FieldType `yaml:"type"`
	Required bool      `yaml:"required"`
	Options  []string  `yaml:"options"`
}

// HasOption reports whether v is one of the picklist values.
func (f Field) HasOption(v string) bool {
	for _, o := range f.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Object is a record type and its ordered form fields.
type Object struct {
	APIName string  `yaml:"api_name"`
	Label   string  `yaml:"label"`
	Fields  []Field `yaml:"fields"`
}

// Field looks up a field by API name.
func (o Object) Field(apiName string) (Field, bool) {
	for _, f := range o.Fields {
		if f.APIName == apiName {
			return f, true
		}
	}
	return Field{}, false
}

// Job Application field API names.
const (
	JobApplicationObject = "Job_Application__c"

	FieldCompany        = "Company__c"
	FieldPrimaryContact = "Primary_Contact__c"
	FieldStatus         = "Status__c"
	FieldPositionTitle  = "Position_Title__c"
	FieldSalary         = "Salary__c"
	FieldSalaryType     = "Salary_Type__c"
)

//go:embed job_application.yaml
var jobApplicationYAML []byte

// JobApplication returns the built-in Job Application layout. The embedded
// document is checked by tests, so a parse failure here is a build defect.
func JobApplication() Object {
	obj, err := Load(jobApplicationYAML)
	if err != nil {
		panic(fmt.Sprintf("recordmeta: embedded job application: %v", err))
	}
	return obj
}

// Load parses and validates a record type document.
func Load(data []byte) (Object, error) {
	var obj Object
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return Object{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	if err := obj.validate(); err != nil {
		return Object{}, err
	}
	return obj, nil
}

func (o Object) validate() error {
	if strings.TrimSpace(o.APIName) == "" {
		return fmt.Errorf("%w: object api_name is empty", ErrInvalidMetadata)
	}
	if len(o.Fields) == 0 {
		return fmt.Errorf("%w: %s has no fields", ErrInvalidMetadata, o.APIName)
	}
	seen := make(map[string]struct{}, len(o.Fields))
	for i, f := range o.Fields {
		if strings.TrimSpace(f.APIName) == "" {
			return fmt.Errorf("%w: field %d has no api_name", ErrInvalidMetadata, i)
		}
		if _, dup := seen[f.APIName]; dup {
			return fmt.Errorf("%w: duplicate field %s", ErrInvalidMetadata, f.APIName)
		}
		seen[f.APIName] = struct{}{}
		switch f.Type {
		case TypeText, TypeLookup, TypeCurrency:
		case TypePicklist:
			if len(f.Options) == 0 {
				return fmt.Errorf("%w: picklist %s has no options", ErrInvalidMetadata, f.APIName)
			}
		default:
			return fmt.Errorf("%w: field %s has unknown type %q", ErrInvalidMetadata, f.APIName, f.Type)
		}
	}
	return nil
}

package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// RuleKind names the rule family applied to a field type.
type RuleKind string

const (
	RuleNonEmpty RuleKind = "nonEmpty"
	RuleEmail    RuleKind = "email"
	RulePhone    RuleKind = "phone"
	RuleDate     RuleKind = "date"
)

const (
	MessageRequired     = "Required"
	MessageInvalidEmail = "Invalid email"
	MessagePhoneDigits  = "Phone number must contain only digits"
	MessagePhoneMin     = "Phone number must be at least 10 digits"
	MessagePhoneMax     = "Phone number cannot exceed 15 digits"
	MessageInvalidDate  = "Invalid date format (YYYY-MM-DD)"
)

const (
	PhoneMinDigits = 10
	PhoneMaxDigits = 15

	FormatEmail = "email"
	FormatDate  = "date"

	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`
	PhonePattern = `^[0-9]+$`
	DatePattern  = `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`
)

var patterns = map[string]*regexp.Regexp{
	EmailPattern: regexp.MustCompile(EmailPattern),
	PhonePattern: regexp.MustCompile(PhonePattern),
	DatePattern:  regexp.MustCompile(DatePattern),
}

// Rule is the validation contract of a single field. Constraints are
// evaluated in order and the first failure wins.
type Rule struct {
	Kind        RuleKind               `json:"kind"`
	Constraints []model.ValidationRule `json:"constraints"`
}

// RuleFor returns the rule for a field type. Types without a dedicated rule
// only require a non-blank value.
func RuleFor(t model.FieldType) Rule {
	switch t {
	case model.FieldTypeEmail:
		return Rule{Kind: RuleEmail, Constraints: []model.ValidationRule{
			required(),
			{Kind: model.ValidationRuleFormat, Params: map[string]string{
				"format":  FormatEmail,
				"pattern": EmailPattern,
				"message": MessageInvalidEmail,
			}},
		}}
	case model.FieldTypePhone:
		return Rule{Kind: RulePhone, Constraints: []model.ValidationRule{
			required(),
			length(model.ValidationRuleMinLength, PhoneMinDigits, MessagePhoneMin),
			length(model.ValidationRuleMaxLength, PhoneMaxDigits, MessagePhoneMax),
			{Kind: model.ValidationRulePattern, Params: map[string]string{
				"pattern": PhonePattern,
				"message": MessagePhoneDigits,
			}},
		}}
	case model.FieldTypeDate:
		return Rule{Kind: RuleDate, Constraints: []model.ValidationRule{
			required(),
			{Kind: model.ValidationRuleFormat, Params: map[string]string{
				"format":  FormatDate,
				"pattern": DatePattern,
				"message": MessageInvalidDate,
			}},
		}}
	default:
		return Rule{Kind: RuleNonEmpty, Constraints: []model.ValidationRule{required()}}
	}
}

func required() model.ValidationRule {
	return model.ValidationRule{
		Kind:   model.ValidationRuleRequired,
		Params: map[string]string{"message": MessageRequired},
	}
}

func length(kind string, n int, message string) model.ValidationRule {
	return model.ValidationRule{
		Kind:   kind,
		Params: map[string]string{"value": strconv.Itoa(n), "message": message},
	}
}

// Check evaluates value and returns the first failing message. A blank value
// (empty after trimming) fails with MessageRequired for every rule.
func (r Rule) Check(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return MessageRequired, false
	}
	for _, c := range r.Constraints {
		if !satisfies(c, value) {
			return c.Params["message"], false
		}
	}
	return "", true
}

func satisfies(c model.ValidationRule, value string) bool {
	switch c.Kind {
	case model.ValidationRuleRequired:
		return strings.TrimSpace(value) != ""
	case model.ValidationRuleMinLength:
		n, err := strconv.Atoi(c.Params["value"])
		return err != nil || utf8.RuneCountInString(value) >= n
	case model.ValidationRuleMaxLength:
		n, err := strconv.Atoi(c.Params["value"])
		return err != nil || utf8.RuneCountInString(value) <= n
	case model.ValidationRulePattern, model.ValidationRuleFormat:
		return matches(c.Params["pattern"], value)
	default:
		return true
	}
}

func matches(pattern, value string) bool {
	if pattern == "" {
		return true
	}
	re, ok := patterns[pattern]
	if !ok {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return true
		}
		re = compiled
	}
	return re.MatchString(value)
}

// Constraint returns the first constraint of the given kind.
func (r Rule) Constraint(kind string) (model.ValidationRule, bool) {
	for _, c := range r.Constraints {
		if c.Kind == kind {
			return c, true
		}
	}
	return model.ValidationRule{}, false
}

func (r Rule) equal(other Rule) bool {
	if r.Kind != other.Kind || len(r.Constraints) != len(other.Constraints) {
		return false
	}
	for i, c := range r.Constraints {
		o := other.Constraints[i]
		if c.Kind != o.Kind || len(c.Params) != len(o.Params) {
			return false
		}
		for k, v := range c.Params {
			if ov, ok := o.Params[k]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}

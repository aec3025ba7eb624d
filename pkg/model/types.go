package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText    = internalmodel.FieldTypeText
	FieldTypeEmail   = internalmodel.FieldTypeEmail
	FieldTypePhone   = internalmodel.FieldTypePhone
	FieldTypeAddress = internalmodel.FieldTypeAddress
	FieldTypeDate    = internalmodel.FieldTypeDate
	FieldTypeSelect  = internalmodel.FieldTypeSelect
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeCustom  = internalmodel.FieldTypeCustom
)

const (
	ValidationRuleRequired  = internalmodel.ValidationRuleRequired
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern   = internalmodel.ValidationRulePattern
	ValidationRuleFormat    = internalmodel.ValidationRuleFormat
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type StyleSpec = internalmodel.StyleSpec
type ButtonStyle = internalmodel.ButtonStyle
type ThemeConfig = internalmodel.ThemeConfig
type FormDocument = internalmodel.FormDocument
type Hints = internalmodel.Hints
type QuickAdd = internalmodel.QuickAdd

package models

// ActionType classifies a mutation recorded in the audit log
type ActionType string

const (
	ActionInsert  ActionType = "INSERT"
	ActionUpdate  ActionType = "UPDATE"
	ActionDelete  ActionType = "DELETE"
	ActionReplace ActionType = "REPLACE"
)

// SkuType distinguishes internally produced SKUs from externally sourced ones
type SkuType string

const (
	SkuTypeInternal SkuType = "internal"
	SkuTypeExternal SkuType = "external"
)

// ChangeOperation drives the component-update flow (new mapping version vs. in-place edit)
type ChangeOperation string

const (
	OperationUpdate  ChangeOperation = "update"
	OperationReplace ChangeOperation = "replace"
)

// ChangeAction drives the independent component-details replace flow
type ChangeAction string

const (
	ActionDetailUpdate  ChangeAction = "update"
	ActionDetailReplace ChangeAction = "replace"
)

// AgreementStatus represents the e-signature lifecycle of a sign-off agreement
type AgreementStatus string

const (
	AgreementStatusDraft    AgreementStatus = "draft"
	AgreementStatusSent     AgreementStatus = "sent"
	AgreementStatusSigned   AgreementStatus = "signed"
	AgreementStatusDeclined AgreementStatus = "declined"
)

// ContactRole identifies the workflow role of a contractor contact
type ContactRole string

const (
	ContactRoleSPOC ContactRole = "SPOC"
	ContactRoleSRM  ContactRole = "SRM"
)

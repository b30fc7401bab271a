package types

type FieldMapping struct {
	Source    string
	Target    string
	Transform TransformType
}

type TransformType string

const (
	TransformIdentity   TransformType = "Identity"
	TransformBoolean    TransformType = "Boolean"
	TransformList       TransformType = "List"
	TransformLeaseHours TransformType = "LeaseHours"
)

func (transformType TransformType) IsValidTransformType() bool {
	switch transformType {
	case TransformIdentity,
		TransformBoolean,
		TransformList,
		TransformLeaseHours:
		return true
	default:
		return false
	}
}

package types

type Setting struct {
	Key    string
	Value  string
	Values []string
	IsList bool
}

type MappedSetting struct {
	Target string
	Value  any
}

package types

type HostRecord struct {
	Domain string
	IP     string
}

type CnameRecord struct {
	Domain string
	Target string
}

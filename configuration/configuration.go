package configuration

type Configuration struct {
	Filter     string `usage:"keep only records matching these JSON conditions, e.g. {\"status\":\"open\"}"`
	Cut        string `usage:"remove one record: first | last | <index>"`
	Copy       string `usage:"copy a field into another on every record: source:destination"`
	Set        string `usage:"set a field on every record: field=value (value is parsed as JSON when possible)"`
	Call       string `usage:"bulk accessor call on every record, e.g. setStatus=closed or getUserName"`
	Separator  string `usage:"separator used by bulk accessor calls to build field names"`
	Pluck      string `usage:"print the values of one field instead of the records"`
	Pretty     bool   `usage:"indent output"`
	Verbose    bool   `usage:"log debug traces to stderr"`
	Version    bool   `usage:"show version and exit"`
	ShowConfig bool   `usage:"print config"`
}

package entities

// Facts summarizes the identity of a device.
type Facts struct {
	Hostname      string   `json:"hostname" yaml:"hostname"`
	Vendor        string   `json:"vendor" yaml:"vendor"`
	Model         string   `json:"model" yaml:"model"`
	OSVersion     string   `json:"os_version" yaml:"os_version"`
	SerialNumber  string   `json:"serial_number" yaml:"serial_number"`
	Uptime        float64  `json:"uptime" yaml:"uptime"`
	InterfaceList []string `json:"interface_list" yaml:"interface_list"`
}

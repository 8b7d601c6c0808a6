package model

// DeviceInfo holds the identity values exposed through the Device object.
type DeviceInfo struct {
	Manufacturer    string `json:"manufacturer,omitempty" yaml:"manufacturer"`
	ModelNumber     string `json:"modelNumber,omitempty" yaml:"modelNumber"`
	SerialNumber    string `json:"serialNumber,omitempty" yaml:"serialNumber"`
	FirmwareVersion string `json:"firmwareVersion,omitempty" yaml:"firmwareVersion"`
	DeviceType      string `json:"deviceType,omitempty" yaml:"deviceType"`
	MSISDN          string `json:"msisdn,omitempty" yaml:"msisdn"`
	AltPath         string `json:"altPath,omitempty" yaml:"altPath"`
}

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// FileConfig is the YAML configuration of the client.
type FileConfig struct {
	Identity string           `yaml:"identity"`
	Device   model.DeviceInfo `yaml:"device"`
	Features *client.Features `yaml:"features"`
	Servers  []ServerEntry    `yaml:"servers"`
	Objects  []ObjectEntry    `yaml:"objects"`
}

// ServerEntry configures one management server.
type ServerEntry struct {
	ShortID  uint16 `yaml:"shortId"`
	URI      string `yaml:"uri"`
	Lifetime uint32 `yaml:"lifetime"`
	Security string `yaml:"security"`
	Queue    bool   `yaml:"queue"`
}

// ObjectEntry declares a custom object served from memory.
type ObjectEntry struct {
	ID        uint16          `yaml:"id"`
	Instances []uint16        `yaml:"instances"`
	Resources []ResourceEntry `yaml:"resources"`
}

// ResourceEntry declares one resource of a custom object.
type ResourceEntry struct {
	ID         uint16 `yaml:"id"`
	Type       string `yaml:"type"`
	Operations string `yaml:"operations"`
	Multiple   bool   `yaml:"multiple"`
}

// loadConfig reads a YAML configuration file.
func loadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Identity == "" {
		return nil, fmt.Errorf("config: identity is required")
	}
	for i, s := range cfg.Servers {
		if s.URI == "" {
			return nil, fmt.Errorf("config: server %d has no uri", i)
		}
		if _, err := s.securityMode(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// securityMode maps the configured name, NONE when empty.
func (s ServerEntry) securityMode() (client.SecurityMode, error) {
	if s.Security == "" {
		return client.SecurityNone, nil
	}
	mode, ok := client.ParseSecurityMode(strings.ToUpper(s.Security))
	if !ok {
		return 0, fmt.Errorf("config: server %d: unknown security mode %q", s.ShortID, s.Security)
	}
	return mode, nil
}

func (s ServerEntry) flags() client.ServerFlag {
	if s.Queue {
		return client.FlagQueueMode
	}
	return 0
}

// descriptors converts the resource entries of an object.
func (o ObjectEntry) descriptors() ([]model.ResourceDescriptor, error) {
	out := make([]model.ResourceDescriptor, 0, len(o.Resources))
	for _, r := range o.Resources {
		d := model.ResourceDescriptor{ID: r.ID}
		if r.Type != "" {
			t, ok := model.ParseValueType(strings.ToLower(r.Type))
			if !ok {
				return nil, fmt.Errorf("object %d resource %d: unknown type %q", o.ID, r.ID, r.Type)
			}
			d.Type = t
		}
		ops, err := parseOperations(r.Operations)
		if err != nil {
			return nil, fmt.Errorf("object %d resource %d: %w", o.ID, r.ID, err)
		}
		d.Operations = ops
		if r.Multiple {
			d.Flags |= model.FlagMultiple
		}
		out = append(out, d)
	}
	return out, nil
}

// parseOperations parses letters in the form produced by model.Operation.String.
func parseOperations(s string) (model.Operation, error) {
	var ops model.Operation
	for _, ch := range strings.ToUpper(s) {
		switch ch {
		case 'R':
			ops |= model.OpRead
		case 'W':
			ops |= model.OpWrite
		case 'E':
			ops |= model.OpExecute
		default:
			return 0, fmt.Errorf("unknown operation %q", ch)
		}
	}
	return ops, nil
}

package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// parseShortID parses a server short id; "all" means every server.
func parseShortID(s string) (uint16, error) {
	if strings.EqualFold(s, "all") {
		return model.IDAll, nil
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid short id %q", s)
	}
	return uint16(v), nil
}

func parseIDs(args []string) ([]uint16, error) {
	out := make([]uint16, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", a)
		}
		out = append(out, uint16(v))
	}
	return out, nil
}

// parsePath parses "/3", "/3/0" or "/3/0/1". The leading slash is optional.
func parsePath(s string) (model.Path, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return model.Path{}, fmt.Errorf("invalid path %q", s)
	}
	ids, err := parseIDs(parts)
	if err != nil {
		return model.Path{}, fmt.Errorf("invalid path %q", s)
	}
	switch len(ids) {
	case 1:
		return model.ObjectPath(ids[0]), nil
	case 2:
		return model.InstancePath(ids[0], ids[1]), nil
	default:
		return model.ResourcePath(ids[0], ids[1], ids[2]), nil
	}
}

func parseSettingID(name string) (client.SettingID, bool) {
	name = strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	for id := client.SettingLifetime; id <= client.SettingCoAPMaxRetransmit; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// parseSettingValue converts s to the type UpdateServerSetting expects for id.
func parseSettingValue(id client.SettingID, s string) (any, error) {
	switch id {
	case client.SettingLifetime, client.SettingDisableTimeout:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", id, s)
		}
		return int32(v), nil
	case client.SettingBinding:
		return parseBinding(s)
	case client.SettingQueueMode, client.SettingNotificationStoring:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", id, s)
		}
		return v, nil
	case client.SettingDefaultMinPeriod, client.SettingDefaultMaxPeriod:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", id, s)
		}
		return uint32(v), nil
	case client.SettingCoAPAckTimeout, client.SettingCoAPMaxRetransmit:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", id, s)
		}
		return uint8(v), nil
	default:
		return nil, fmt.Errorf("setting %s cannot be changed", id)
	}
}

// parseBinding parses binding letters such as "UT".
func parseBinding(s string) (client.Binding, error) {
	var b client.Binding
	for _, ch := range strings.ToUpper(s) {
		switch ch {
		case 'U':
			b |= client.BindingUDP
		case 'T':
			b |= client.BindingTCP
		case 'S':
			b |= client.BindingSMS
		case 'N':
			b |= client.BindingNonIP
		case 'Q':
			b |= client.BindingQueue
		default:
			return 0, fmt.Errorf("invalid binding %q", s)
		}
	}
	return b, nil
}

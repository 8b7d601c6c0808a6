// Package interactive provides the interactive command-line interface
// for lwm2m-client.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// Values stores resource values of the custom objects.
type Values interface {
	Set(objectID, instanceID, resourceID uint16, value string)
}

// Shell handles interactive mode for lwm2m-client.
type Shell struct {
	c      *client.Client
	values Values
	out    io.Writer
	rl     *readline.Instance
}

// New creates a shell reading from the terminal.
func New(c *client.Client, values Values) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lwm2m> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := NewWithWriter(c, values, rl.Stdout())
	s.rl = rl
	return s, nil
}

// NewWithWriter creates a shell without a terminal. Commands are fed through
// Execute and their output goes to out.
func NewWithWriter(c *client.Client, values Values, out io.Writer) *Shell {
	return &Shell{c: c, values: values, out: out}
}

// Stdout returns a writer that coordinates with the readline prompt.
// Use it for log output.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
		if s.Execute(line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns true when the shell should exit.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "servers", "ls":
		s.cmdServers()
	case "add":
		err = s.cmdAdd(args)
	case "remove", "rm":
		err = s.cmdRemove(args)
	case "heartbeat", "hb":
		err = s.cmdHeartbeat(args)
	case "periods":
		err = s.cmdPeriods(args)
	case "setting":
		err = s.cmdSetting(args)
	case "objects":
		s.cmdObjects()
	case "set":
		err = s.cmdSet(args)
	case "create", "delete":
		err = s.cmdInstance(cmd, args)
	case "observe":
		err = s.cmdObserve(args)
	case "delay":
		s.cmdDelay()
	case "lock":
		s.c.LockNotifications(true)
		fmt.Fprintln(s.out, "notifications locked")
	case "unlock":
		s.c.LockNotifications(false)
		fmt.Fprintln(s.out, "notifications unlocked")
	case "time":
		err = s.cmdTime(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
LwM2M Client Commands:
  Servers:
    servers                              - List configured servers
    add <id> <uri> [lifetime] [mode] [q] - Add a server (mode: NONE, PSK, CERTIFICATE, RPK)
    remove <id|all>                      - Remove a server
    heartbeat <id|all>                   - Force a registration update
    periods <id|all> <pmin> <pmax>       - Set default notification periods
    setting <id> <name> [value]          - Show or change a server setting

  Objects:
    objects                              - List custom objects
    set <obj> <inst> <res> <value>       - Change a resource value
    create <obj> <inst>                  - Create an object instance
    delete <obj> <inst>                  - Delete an object instance
    observe <id> <path> <pmax>           - Start an observation (path: /obj/inst/res)

  Scheduling:
    delay                                - Show the next wake delay
    lock | unlock                        - Hold or release change notifications
    time [seconds]                       - Show or set the client time

    help                                 - Show this help
    quit                                 - Exit`)
}

func (s *Shell) cmdServers() {
	servers := s.c.Servers()
	if len(servers) == 0 {
		fmt.Fprintln(s.out, "No servers configured.")
		return
	}
	fmt.Fprintf(s.out, "%-6s %-32s %-10s %-8s %-12s %-8s %s\n", "ID", "URI", "LIFETIME", "BINDING", "SECURITY", "OBSERVE", "STATE")
	for _, srv := range servers {
		binding := srv.Binding.String()
		if srv.QueueMode {
			binding += "Q"
		}
		fmt.Fprintf(s.out, "%-6d %-32s %-10d %-8s %-12s %-8d %s\n",
			srv.ShortID, srv.URI, srv.Lifetime, binding, srv.SecurityMode, len(srv.Observations), srv.State)
	}
}

func (s *Shell) cmdAdd(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add <id> <uri> [lifetime] [mode] [q]")
	}
	id, err := parseShortID(args[0])
	if err != nil {
		return err
	}
	var lifetime uint64
	if len(args) > 2 {
		if lifetime, err = strconv.ParseUint(args[2], 10, 32); err != nil {
			return fmt.Errorf("invalid lifetime %q", args[2])
		}
	}
	mode := client.SecurityNone
	if len(args) > 3 {
		m, ok := client.ParseSecurityMode(strings.ToUpper(args[3]))
		if !ok {
			return fmt.Errorf("unknown security mode %q", args[3])
		}
		mode = m
	}
	var flags client.ServerFlag
	if len(args) > 4 && strings.EqualFold(args[4], "q") {
		flags |= client.FlagQueueMode
	}

	if err := s.c.AddServer(id, args[1], uint32(lifetime), flags, mode); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "server %d added\n", id)
	return nil
}

func (s *Shell) cmdRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remove <id|all>")
	}
	id, err := parseShortID(args[0])
	if err != nil {
		return err
	}
	if err := s.c.RemoveServer(id); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "removed %s\n", args[0])
	return nil
}

func (s *Shell) cmdHeartbeat(args []string) error {
	id := model.IDAll
	if len(args) > 0 {
		var err error
		if id, err = parseShortID(args[0]); err != nil {
			return err
		}
	}
	if err := s.c.SendHeartbeat(id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "heartbeat sent")
	return nil
}

func (s *Shell) cmdPeriods(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: periods <id|all> <pmin> <pmax>")
	}
	id, err := parseShortID(args[0])
	if err != nil {
		return err
	}
	pmin, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid pmin %q", args[1])
	}
	pmax, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid pmax %q", args[2])
	}
	return s.c.SetDefaultNotificationPeriods(id, uint32(pmin), uint32(pmax))
}

func (s *Shell) cmdSetting(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: setting <id> <name> [value]")
	}
	id, err := parseShortID(args[0])
	if err != nil {
		return err
	}
	setting, ok := parseSettingID(args[1])
	if !ok {
		return fmt.Errorf("unknown setting %q", args[1])
	}

	if len(args) > 2 {
		value, err := parseSettingValue(setting, args[2])
		if err != nil {
			return err
		}
		if err := s.c.UpdateServerSetting(id, setting, value); err != nil {
			return err
		}
	}

	v, err := s.c.ServerSetting(id, setting)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %v\n", setting, v)
	return nil
}

func (s *Shell) cmdObjects() {
	ids := s.c.Objects()
	if len(ids) == 0 {
		fmt.Fprintln(s.out, "No custom objects.")
		return
	}
	for _, id := range ids {
		instances, _ := s.c.ObjectInstances(id)
		fmt.Fprintf(s.out, "/%d  instances: %v\n", id, instances)
	}
}

func (s *Shell) cmdSet(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: set <obj> <inst> <res> <value>")
	}
	ids, err := parseIDs(args[:3])
	if err != nil {
		return err
	}
	s.values.Set(ids[0], ids[1], ids[2], args[3])
	return s.c.NotifyResourceChanged(ids[0], ids[1], ids[2])
}

func (s *Shell) cmdInstance(cmd string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s <obj> <inst>", cmd)
	}
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	op := model.InstanceCreate
	if cmd == "delete" {
		op = model.InstanceDelete
	}
	if err := s.c.NotifyInstanceChanged(ids[0], ids[1], op); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s /%d/%d\n", op, ids[0], ids[1])
	return nil
}

func (s *Shell) cmdObserve(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: observe <id> <path> <pmax>")
	}
	id, err := parseShortID(args[0])
	if err != nil {
		return err
	}
	path, err := parsePath(args[1])
	if err != nil {
		return err
	}
	pmax, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid pmax %q", args[2])
	}
	return s.c.AddObservation(id, client.Observation{
		Path:         path,
		MaxPeriod:    uint32(pmax),
		HasMaxPeriod: true,
		LastNotify:   s.c.Now(),
	})
}

func (s *Shell) cmdDelay() {
	delay := s.c.NextWakeDelay()
	if delay == client.NoDeadline {
		fmt.Fprintln(s.out, "next wake: none")
		return
	}
	fmt.Fprintf(s.out, "next wake: %ds\n", delay)
}

func (s *Shell) cmdTime(args []string) error {
	if len(args) > 0 {
		now, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid time %q", args[0])
		}
		s.c.SetTime(now)
	}
	fmt.Fprintf(s.out, "time: %d\n", s.c.Now())
	return nil
}

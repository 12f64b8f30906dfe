package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/dynlist/internal/arraylist"
	"github.com/san-kum/dynlist/internal/orders"
)

var (
	ErrUnknownCommand = errors.New("console: unknown command")
	ErrUsage          = errors.New("console: bad arguments")
	ErrQuit           = errors.New("console: quit")
)

const helpText = "add V | insert I V | get I | set I V | remove I | delete V | clear | size | sort [order] | quit"

type command struct {
	args  int
	usage string
	run   func(l *arraylist.ArrayList[int], args []int) (string, error)
}

var commands = map[string]command{
	"add": {1, "add V", func(l *arraylist.ArrayList[int], a []int) (string, error) {
		l.Add(a[0])
		return fmt.Sprintf("size %d", l.Size()), nil
	}},
	"insert": {2, "insert I V", func(l *arraylist.ArrayList[int], a []int) (string, error) {
		if err := l.Insert(a[0], a[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("size %d", l.Size()), nil
	}},
	"get": {1, "get I", func(l *arraylist.ArrayList[int], a []int) (string, error) {
		v, err := l.Get(a[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}},
	"set": {2, "set I V", func(l *arraylist.ArrayList[int], a []int) (string, error) {
		prev, err := l.Set(a[0], a[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("previous %d", prev), nil
	}},
	"remove": {1, "remove I", func(l *arraylist.ArrayList[int], a []int) (string, error) {
		v, err := l.RemoveAt(a[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("removed %d", v), nil
	}},
	"delete": {1, "delete V", func(l *arraylist.ArrayList[int], a []int) (string, error) {
		if l.Remove(a[0]) {
			return fmt.Sprintf("removed %d", a[0]), nil
		}
		return fmt.Sprintf("%d not found", a[0]), nil
	}},
	"clear": {0, "clear", func(l *arraylist.ArrayList[int], _ []int) (string, error) {
		l.Clear()
		return "cleared", nil
	}},
	"size": {0, "size", func(l *arraylist.ArrayList[int], _ []int) (string, error) {
		return fmt.Sprintf("size %d, capacity %d", l.Size(), l.Cap()), nil
	}},
	"help": {0, "help", func(_ *arraylist.ArrayList[int], _ []int) (string, error) {
		return helpText, nil
	}},
}

// Exec runs one console line against l. The sort command takes an order
// name instead of integers and is handled separately.
func Exec(l *arraylist.ArrayList[int], reg *orders.Registry[int], line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, raw := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit", "q":
		return "", ErrQuit
	case "sort":
		return execSort(l, reg, raw)
	}

	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(raw) != cmd.args {
		return "", fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}
	args := make([]int, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not an integer", ErrUsage, s)
		}
		args[i] = v
	}
	return cmd.run(l, args)
}

func execSort(l *arraylist.ArrayList[int], reg *orders.Registry[int], raw []string) (string, error) {
	if len(raw) > 1 {
		return "", fmt.Errorf("%w: usage: sort [order]", ErrUsage)
	}
	name := orders.Natural
	if len(raw) == 1 {
		name = raw[0]
	}
	compare, err := reg.Get(name)
	if err != nil {
		return "", err
	}
	if err := l.Sort(compare); err != nil {
		return "", err
	}
	return l.String(), nil
}

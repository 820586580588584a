package cli

import (
	"errors"
	"fmt"

	"github.com/alapierre/credstore/pkg/credstore"
)

type SetCmd struct {
	Key   string  `arg:"" help:"Secret key."`
	Value *string `arg:"" optional:"" help:"Secret value (prompted or read from stdin if missing)."`
	Type  string  `default:"string" enum:"string,bool,bytes" help:"Value type: string, bool or bytes (base64)."`
}

func (c *SetCmd) Run(g *Globals) error {
	store, p, err := g.openStore()
	if err != nil {
		return err
	}
	input, err := readValue(c.Value, c.Key, g.NonInteractive)
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}
	v, err := parseValue(c.Type, input)
	if err != nil {
		return err
	}

	switch v.kind {
	case typeBool:
		_, err = store.SetBool(v.b, c.Key, p.Accessibility)
	case typeBytes:
		_, err = store.SetBytes(v.raw, c.Key, p.Accessibility)
	default:
		_, err = store.SetString(v.str, c.Key, p.Accessibility)
	}
	if errors.Is(err, credstore.ErrDuplicateItem) {
		return fmt.Errorf("%s already exists, use update to change it: %w", c.Key, err)
	}
	if err != nil {
		return err
	}
	logger.Infof("Stored %s", c.Key)
	return nil
}

type GetCmd struct {
	Key  string `arg:"" help:"Secret key."`
	Type string `default:"string" enum:"string,bool,bytes" help:"Value type: string, bool or bytes (printed as base64)."`
}

func (c *GetCmd) Run(g *Globals) error {
	store, p, err := g.openStore()
	if err != nil {
		return err
	}

	switch c.Type {
	case typeBool:
		b, err := store.GetBool(c.Key, p.Accessibility)
		if err != nil {
			return err
		}
		fmt.Println(b)
	case typeBytes:
		raw, found, err := store.GetBytes(c.Key, p.Accessibility)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no value stored for %s", c.Key)
		}
		fmt.Println(formatBytes(raw))
	default:
		s, err := store.GetString(c.Key, p.Accessibility)
		if err != nil {
			return err
		}
		fmt.Println(s)
	}
	return nil
}

type UpdateCmd struct {
	Key   string  `arg:"" help:"Secret key."`
	Value *string `arg:"" optional:"" help:"New value (prompted or read from stdin if missing)."`
	Type  string  `default:"string" enum:"string,bool,bytes" help:"Value type: string, bool or bytes (base64)."`
}

func (c *UpdateCmd) Run(g *Globals) error {
	store, p, err := g.openStore()
	if err != nil {
		return err
	}
	input, err := readValue(c.Value, c.Key, g.NonInteractive)
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}
	v, err := parseValue(c.Type, input)
	if err != nil {
		return err
	}

	switch v.kind {
	case typeBool:
		_, err = store.UpdateBool(v.b, c.Key, p.Accessibility)
	case typeBytes:
		_, err = store.UpdateBytes(v.raw, c.Key, p.Accessibility)
	default:
		_, err = store.UpdateString(v.str, c.Key, p.Accessibility)
	}
	if err != nil {
		return err
	}
	logger.Infof("Updated %s", c.Key)
	return nil
}

type DeleteCmd struct {
	Key string `arg:"" help:"Secret key."`
}

func (c *DeleteCmd) Run(g *Globals) error {
	store, p, err := g.openStore()
	if err != nil {
		return err
	}
	if _, err := store.Delete(c.Key, p.Accessibility); err != nil {
		return err
	}
	logger.Infof("Deleted %s", c.Key)
	return nil
}

type DeleteAllCmd struct {
	Yes bool `help:"Confirm deletion of every secret in the service."`
}

func (c *DeleteAllCmd) Run(g *Globals) error {
	if !c.Yes {
		return fmt.Errorf("refusing to delete all secrets without --yes")
	}
	store, p, err := g.openStore()
	if err != nil {
		return err
	}
	if _, err := store.DeleteAll(); err != nil {
		return err
	}
	logger.Infof("Deleted all secrets of service %s", p.Service)
	return nil
}

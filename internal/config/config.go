// Package config defines the CLI structure and configuration for scctl.
package config

import (
	"github.com/seagrayinc/sc-hid/internal/cmd"
)

type Log struct {
	Level  string `name:"log-level" help:"Log level: trace, debug, info, warn, error" default:"info" env:"SCCTL_LOG_LEVEL"`
	File   string `name:"log-file" help:"Log file path (default: none; logs only to console)" env:"SCCTL_LOG_FILE"`
	RawLog string `name:"raw-log" help:"Raw input frame log file path (default: none)" env:"SCCTL_RAW_LOG"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Config string `help:"Config file path (json, yaml or toml)" env:"SCCTL_CONFIG"`
	Log    `embed:""`

	Devices    cmd.Devices       `cmd:"" help:"List discoverable Steam Controllers"`
	Interfaces cmd.Interfaces    `cmd:"" help:"List HID interfaces for troubleshooting"`
	Detect     cmd.Detect        `cmd:"" help:"Check whether a controller is present"`
	Status     cmd.Status        `cmd:"" help:"Show the connection state"`
	Read       cmd.Read          `cmd:"" help:"Read a single input snapshot"`
	Watch      cmd.Watch         `cmd:"" help:"Stream input snapshots until interrupted"`
	Monitor    cmd.Monitor       `cmd:"" help:"Watch for controller arrival and removal"`
	ConfigCmd  cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

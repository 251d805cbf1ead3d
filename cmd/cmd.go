package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
)

const (
	ServiceName      = "admin-console"
	ServiceNamespace = "prithu"
)

func Run() error {

	app := &cli.App{
		Name:  ServiceName,
		Usage: "Prithu platform administrative console",
		Flags: nil, // []cli.Flag{}
		// Commands: []*cli.Command{
		// 	// consoleCmd(),
		// 	console.CMD(),
		// },
		Version:  Version(),
		Commands: commands,
	}

	return app.Run(os.Args)
}

var commands []*cli.Command

func Register(cmds ...*cli.Command) {
	commands = append(commands, cmds...)
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bodgit/iconrez"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func parseInputs(args []string) (map[iconrez.Role]string, error) {
	inputs := make(map[iconrez.Role]string, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected TYPE=FILE, got %q", arg)
		}
		role, ok := iconrez.RoleForType(parts[0])
		if !ok {
			return nil, fmt.Errorf("unknown resource type %q", parts[0])
		}
		if _, ok := inputs[role]; ok {
			return nil, fmt.Errorf("duplicate resource type %q", parts[0])
		}
		inputs[role] = parts[1]
	}
	return inputs, nil
}

func newIconRez(c *cli.Context) *iconrez.IconRez {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return iconrez.New(logger)
}

func main() {
	app := cli.NewApp()

	app.Name = "iconrez"
	app.Usage = "Classic Mac OS icon family resource generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "emit",
			Usage:       "Generate a resource definition file from six images",
			Description: "Six TYPE=FILE arguments are required, one per family member: ICN#, icl4, icl8, ics#, ics4, ics8. Blocks are always emitted in that order.",
			ArgsUsage:   "TYPE=FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					EnvVars: []string{"ICONREZ_OUTPUT"},
					Value:   "icons.r",
					Usage:   "path to output document",
				},
				&cli.IntFlag{
					Name:  "id",
					Value: iconrez.DefaultID,
					Usage: "resource ID shared by the family",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "optional resource name",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "diffuse quantization error with Floyd-Steinberg",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				inputs, err := parseInputs(c.Args().Slice())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m := newIconRez(c)

				opts := iconrez.EmitOptions{
					ID:   int16(c.Int("id")),
					Name: c.String("name"),
					Options: iconrez.Options{
						Dither: c.Bool("dither"),
					},
				}

				if err := m.EmitFile(c.String("output"), inputs, opts); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render the quantized family as a contact sheet PNG",
			Description: "Quantizes the same six images the emit command takes but writes a PNG for inspection instead of a resource definition.",
			ArgsUsage:   "TYPE=FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "preview.png",
					Usage:   "path to output image",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 4,
					Usage: "integer upscale factor",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "diffuse quantization error with Floyd-Steinberg",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				inputs, err := parseInputs(c.Args().Slice())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m := newIconRez(c)

				opts := iconrez.Options{
					Dither: c.Bool("dither"),
				}

				if err := m.PreviewFile(c.String("output"), inputs, c.Int("scale"), opts); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

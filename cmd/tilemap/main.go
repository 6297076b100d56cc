package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/richardturnnidge/tilemap"
	"github.com/urfave/cli/v2"
)

const defaultDB = "tilemap.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newTileMap(c *cli.Context) (*tilemap.TileMap, *tilemap.TileDB, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	db, err := tilemap.NewTileDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return tilemap.New(db, logger), db, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tilemap"
	app.Usage = "Agon VDP tile map utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TILEMAP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to tile set catalog",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	cellFlags := []cli.Flag{
		&cli.IntFlag{
			Name:  "cell-width",
			Value: 16,
			Usage: "tile width in pixels",
		},
		&cli.IntFlag{
			Name:  "cell-height",
			Value: 16,
			Usage: "tile height in pixels",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to a raw RGBA2222 tile map",
			Description: "The converted file is written alongside the original with a " + tilemap.Extension + " extension and its geometry is recorded in the catalog.",
			ArgsUsage:   "FILE...",
			Flags:       cellFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, db, err := newTileMap(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				for _, file := range c.Args().Slice() {
					ts, err := m.Convert(file, c.Int("cell-width"), c.Int("cell-height"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					fmt.Printf("%s: %d tiles (%d rows x %d columns)\n", ts.Name+tilemap.Extension, ts.Geometry.TileCount(), ts.Geometry.Rows, ts.Geometry.Columns)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image under a directory tree",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags:       cellFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, db, err := newTileMap(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := m.Scan(c.Args().First(), c.Int("cell-width"), c.Int("cell-height")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "show",
			Usage:       "Emit the VDU byte stream that loads and displays a tile map",
			Description: "Geometry is looked up in the catalog by file CRC unless --rows and --columns are given. Direct the output at the VDP serial device, or capture it to a file for replay.",
			ArgsUsage:   "FILE",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "-",
					Usage:   "write the byte stream to `DEVICE` instead of stdout",
				},
				&cli.IntFlag{
					Name:  "mode",
					Value: 8,
					Usage: "VDP screen mode",
				},
				&cli.IntFlag{
					Name:  "start-id",
					Value: 0,
					Usage: "first bitmap buffer ID",
				},
				&cli.IntFlag{
					Name:  "staging-id",
					Value: 5000,
					Usage: "staging buffer ID",
				},
				&cli.IntFlag{
					Name:  "rows",
					Usage: "grid rows (with --columns, overrides the catalog)",
				},
				&cli.IntFlag{
					Name:  "columns",
					Usage: "grid columns (with --rows, overrides the catalog)",
				},
			}, cellFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, db, err := newTileMap(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				opts := tilemap.ShowOptions{
					Mode:      uint8(c.Int("mode")),
					StartID:   c.Int("start-id"),
					StagingID: c.Int("staging-id"),
					Layout:    tilemap.DefaultLayout,
				}

				if c.Int("rows") > 0 && c.Int("columns") > 0 {
					opts.Geometry = &tilemap.Geometry{
						CellWidth:  c.Int("cell-width"),
						CellHeight: c.Int("cell-height"),
						Rows:       c.Int("rows"),
						Columns:    c.Int("columns"),
					}
				}

				out := os.Stdout
				if name := c.String("output"); name != "-" {
					f, err := os.Create(name)
					if err != nil {
						return cli.Exit(err, 1)
					}
					defer f.Close()
					out = f
				}

				if err := m.Show(out, c.Args().First(), opts); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Print the catalogued geometry for a tile map file",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, db, err := newTileMap(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				ts, err := m.Info(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				if ts == nil {
					return cli.Exit("not in catalog", 1)
				}

				g := ts.Geometry
				fmt.Printf("%s: CRC %s, %d rows x %d columns of %dx%d cells, %d bytes\n",
					ts.Name, ts.CRC, g.Rows, g.Columns, g.CellWidth, g.CellHeight, g.FileSize())

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

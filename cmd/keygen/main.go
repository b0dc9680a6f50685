package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/droidsign/keyprovisioner/avb"
	"github.com/droidsign/keyprovisioner/buildcfg"
	"github.com/droidsign/keyprovisioner/catalog"
	"github.com/droidsign/keyprovisioner/common"
	"github.com/droidsign/keyprovisioner/provision"
)

var flags []cli.Flag = []cli.Flag{
	&cli.StringFlag{
		Name:    "certs-dir",
		Value:   "",
		Usage:   "directory for platform private keys (default ~/.android-certs)",
		EnvVars: []string{"CERTS_PATH"},
	},
	&cli.StringFlag{
		Name:  "output-dir",
		Value: ".",
		Usage: "directory for certificates, PKCS8 keys, public keys and build config files",
	},
	&cli.StringFlag{
		Name:    "avbtool",
		Value:   avb.DefaultToolPath,
		Usage:   "avbtool executable used to extract apex public keys",
		EnvVars: []string{"AVBTOOL"},
	},
	&cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "max parallel key generations, 0 for the host CPU count",
	},
	&cli.IntFlag{
		Name:  "platform-key-size",
		Value: provision.DefaultKeyBits,
		Usage: "RSA modulus size in bits for platform keys",
	},
	&cli.IntFlag{
		Name:  "apex-key-size",
		Value: provision.DefaultKeyBits,
		Usage: "RSA modulus size in bits for apex keys",
	},
	&cli.BoolFlag{
		Name:  "log-json",
		Value: false,
		Usage: "log in JSON format",
	},
	&cli.BoolFlag{
		Name:  "log-debug",
		Value: false,
		Usage: "log debug messages",
	},
	&cli.BoolFlag{
		Name:  "log-uid",
		Value: false,
		Usage: "generate a uuid and add to all log messages",
	},
	&cli.StringFlag{
		Name:  "log-service",
		Value: "keygen",
		Usage: "add 'service' tag to logs",
	},
}

func main() {
	app := &cli.App{
		Name:  "keygen",
		Usage: "Provision Android platform and apex signing keys and emit their build configuration",
		Flags: flags,
		Action: func(cCtx *cli.Context) error {
			certsDir := cCtx.String("certs-dir")
			outputDir := cCtx.String("output-dir")
			avbtoolPath := cCtx.String("avbtool")
			workers := cCtx.Int("workers")
			platformBits := cCtx.Int("platform-key-size")
			apexBits := cCtx.Int("apex-key-size")

			logger := common.SetupLogger(&common.LoggingOpts{
				Debug:   cCtx.Bool("log-debug"),
				JSON:    cCtx.Bool("log-json"),
				Service: cCtx.String("log-service"),
				Version: common.Version,
			})
			if cCtx.Bool("log-uid") {
				id := uuid.Must(uuid.NewRandom())
				logger = logger.With("uid", id.String())
			}

			if certsDir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					logger.Error("Failed to resolve home directory", "err", err)
					return err
				}
				certsDir = filepath.Join(home, ".android-certs")
			}

			entries := catalog.Default()
			if err := catalog.Validate(entries); err != nil {
				logger.Error("Invalid catalog", "err", err)
				return err
			}

			cfg := provision.Config{
				CertsDir:        certsDir,
				OutputDir:       outputDir,
				PlatformKeyBits: platformBits,
				ApexKeyBits:     apexBits,
			}
			gen := provision.NewGenerator(cfg, avb.NewTool(avbtoolPath), logger)
			orch := provision.NewOrchestrator(gen, workers, logger)

			platform, apex, err := orch.Run(context.Background(), entries)
			if err != nil {
				logger.Error("Provisioning run failed", "err", err)
				return err
			}

			failures := append(provision.Failures(platform), provision.Failures(apex)...)
			for _, ferr := range failures {
				var entryErr *provision.EntryError
				if errors.As(ferr, &entryErr) {
					logger.Error("Bundle generation failed",
						"key", entryErr.Name,
						"kind", string(entryErr.Kind),
						"err", entryErr.Err)
				} else {
					logger.Error("Bundle generation failed", "err", ferr)
				}
			}

			// Build configuration is emitted even when some bundles
			// failed, so a partially provisioned tree still gets
			// consistent, catalog-derived config files.
			bpPath := filepath.Join(outputDir, "Android.bp")
			if err := os.WriteFile(bpPath, []byte(buildcfg.AndroidBP(entries)), 0644); err != nil {
				logger.Error("Failed to write Android.bp", "err", err)
				return err
			}
			mkPath := filepath.Join(outputDir, "keys.mk")
			if err := os.WriteFile(mkPath, []byte(buildcfg.KeysMK(entries)), 0644); err != nil {
				logger.Error("Failed to write keys.mk", "err", err)
				return err
			}

			if len(failures) > 0 {
				return fmt.Errorf("%d of %d bundles failed", len(failures), len(entries))
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

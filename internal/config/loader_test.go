package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/okian/lineout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"LINEOUT_CONFIG",
	"LINEOUT_ENV_FILE",
	"LINEOUT_ADDR",
	"LINEOUT_WORKBOOK_PATH",
	"LINEOUT_MANUAL_TABLE",
	"LINEOUT_DEDUPE_SIZE",
	"LINEOUT_FORM_URL",
	"LINEOUT_LOG_LEVEL",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		// Point at a missing env file so a stray .env in the working
		// directory cannot leak in.
		_ = os.Setenv("LINEOUT_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.WorkbookPath, convey.ShouldEqual, "lineout.xlsx")
				convey.So(cfg.FormTable, convey.ShouldEqual, "Respuestas de formulario 3")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("LINEOUT_ADDR", ":8080")
			_ = os.Setenv("LINEOUT_WORKBOOK_PATH", "/data/squad.xlsx")
			_ = os.Setenv("LINEOUT_DEDUPE_SIZE", "100")
			_ = os.Setenv("LINEOUT_FORM_URL", "https://forms.example.com/asistencia")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.WorkbookPath, convey.ShouldEqual, "/data/squad.xlsx")
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 100)
				convey.So(cfg.FormURL, convey.ShouldEqual, "https://forms.example.com/asistencia")
				convey.So(cfg.PlayersTable, convey.ShouldEqual, "Jugadores")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := writeFile(t, "lineout.yaml", `
addr: ":9090"
manual_table: "Asistencia"
dedupe_size: 50
`)
			_ = os.Setenv("LINEOUT_CONFIG", path)
			_ = os.Setenv("LINEOUT_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ManualTable, convey.ShouldEqual, "Asistencia")
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 50)
				convey.So(cfg.InjuriesTable, convey.ShouldEqual, "Lesionados")
			})
		})

		convey.Convey("When a .env file is present", func() {
			_ = os.Setenv("LINEOUT_ENV_FILE", writeFile(t, "lineout.env", "LINEOUT_WORKBOOK_PATH=from-dotenv.xlsx\n"))
			defer func() { _ = os.Unsetenv("LINEOUT_WORKBOOK_PATH") }()

			cfg, err := config.Load(ctx)

			convey.Convey("Then its variables are applied", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WorkbookPath, convey.ShouldEqual, "from-dotenv.xlsx")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			_ = os.Setenv("LINEOUT_CONFIG", writeFile(t, "bad.yaml", `invalid: yaml: content: [`))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("LINEOUT_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("LINEOUT_CONFIG", writeFile(t, "empty.yaml", `addr: ""`))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

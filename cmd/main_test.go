package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/okian/lineout/internal/adapters/http/api"
	"github.com/okian/lineout/internal/adapters/repository"
	"github.com/okian/lineout/internal/config"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func squadBackend() *repository.Memory {
	return repository.NewMemory(
		repository.Sheet{Name: "Jugadores", Table: model.Table{
			Header: []string{"Nombre", "Apellido", "Tipo", "Puesto"},
			Rows: [][]string{
				{"Juan", "Perez", "Forward", "Pilar"},
				{"Ana", "Diaz", "Back", "Wing"},
			},
		}},
		repository.Sheet{Name: "DB_Asistencia", Table: model.Table{
			Header: []string{"Fecha", "Jugador", "Origen"},
			Rows:   [][]string{{"01/03/2026", "Juan Perez", "Manual"}},
		}},
		repository.Sheet{Name: "Respuestas de formulario 3", Table: model.Table{
			Header: []string{"Marca temporal", "Nombre y apellido"},
			Rows:   [][]string{{"2026-03-08 10:00", "Juan Perez, Ana Diaz"}},
		}},
		repository.Sheet{Name: "Lesionados", Table: model.Table{
			Header: []string{"Jugador", "Gravedad"},
		}},
	)
}

func TestConfigLoading(t *testing.T) {
	convey.Convey("Given environment overrides", t, func() {
		_ = os.Setenv("LINEOUT_ADDR", ":8080")
		_ = os.Setenv("LINEOUT_WORKBOOK_PATH", "squad.xlsx")
		_ = os.Setenv("LINEOUT_DEDUPE_SIZE", "128")
		defer func() {
			_ = os.Unsetenv("LINEOUT_ADDR")
			_ = os.Unsetenv("LINEOUT_WORKBOOK_PATH")
			_ = os.Unsetenv("LINEOUT_DEDUPE_SIZE")
		}()

		convey.Convey("Then configuration should be loadable", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.WorkbookPath, convey.ShouldEqual, "squad.xlsx")
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 128)
		})
	})

	convey.Convey("Given an empty listen address", t, func() {
		_ = os.Setenv("LINEOUT_ADDR", "")
		defer func() { _ = os.Unsetenv("LINEOUT_ADDR") }()

		convey.Convey("Then configuration loading should fail", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

func TestApplicationWiring(t *testing.T) {
	convey.Convey("Given a service built from default configuration", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg := config.New(ctx)
		cfg.FormURL = "https://forms.example.com/lineout"
		svc := newService(cfg, squadBackend(), logger.Get())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		handler := newHandler(ctx, svc)

		convey.Convey("When the dashboard is requested", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

			convey.Convey("Then the squad is read through the configured tables", func() {
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(rec.Body.String(), convey.ShouldContainSubstring, `"roster":2`)
				convey.So(rec.Body.String(), convey.ShouldContainSubstring, "2026-03-08")
			})

			convey.Convey("Then the response carries a request id", func() {
				convey.So(rec.Header().Get(api.RequestIDHeader), convey.ShouldHaveLength, 36)
			})
		})

		convey.Convey("When the form link is requested", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attendance/form", nil))
			convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(rec.Body.String(), convey.ShouldContainSubstring, "forms.example.com")
		})

		convey.Convey("When the API docs are requested", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
			convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(rec.Body.String(), convey.ShouldContainSubstring, "/players/{name}")
		})

		convey.Convey("When the service metrics are refreshed", func() {
			convey.So(func() { updateServiceMetrics(ctx, svc) }, convey.ShouldNotPanic)
		})
	})
}

func TestMetricsUpdaters(t *testing.T) {
	convey.Convey("Given cancelled contexts", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		convey.Convey("Then the updaters return", func() {
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			svc := newService(config.New(ctx), squadBackend(), logger.NewNop())
			convey.So(func() { startServiceMetricsUpdater(ctx, svc) }, convey.ShouldNotPanic)
		})

		convey.Convey("Then a refresh on a stopped service is harmless", func() {
			svc := newService(config.New(ctx), squadBackend(), logger.NewNop())
			convey.So(func() { updateServiceMetrics(ctx, svc) }, convey.ShouldNotPanic)
		})

		convey.Convey("Then system gauges update", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}

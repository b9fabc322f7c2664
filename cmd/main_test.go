package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"

	"github.com/vedanga/jyoti/internal/adapters/cache"
	"github.com/vedanga/jyoti/internal/adapters/http/api"
	app "github.com/vedanga/jyoti/internal/app"
	"github.com/vedanga/jyoti/internal/config"
	"github.com/vedanga/jyoti/pkg/logger"
	"github.com/vedanga/jyoti/pkg/metrics"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("JYOTI_ADDR", ":8080")
			_ = os.Setenv("JYOTI_CACHE_BACKEND", "none")
			defer func() {
				_ = os.Unsetenv("JYOTI_ADDR")
				_ = os.Unsetenv("JYOTI_CACHE_BACKEND")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CacheBackend, convey.ShouldEqual, config.CacheBackendNone)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				convey.So(logger.Init(), convey.ShouldBeNil)
				svc := app.New(
					app.WithLogger(logger.Get()),
					app.WithCache(cache.NewMemoryCache(time.Minute)),
					app.WithDashaHorizonYears(60),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing the cache selection", func() {
			convey.Convey("Then the memory backend should build an in-memory cache", func() {
				cfg := config.New()
				cfg.CacheBackend = config.CacheBackendMemory
				c := buildCache(cfg)
				convey.So(c, convey.ShouldNotBeNil)
				convey.So(c, convey.ShouldHaveSameTypeAs, &cache.MemoryCache{})
			})

			convey.Convey("And the none backend should disable caching", func() {
				cfg := config.New()
				cfg.CacheBackend = config.CacheBackendNone
				convey.So(buildCache(cfg), convey.ShouldBeNil)
			})

			convey.Convey("And the redis backend should build a redis cache", func() {
				cfg := config.New()
				cfg.CacheBackend = config.CacheBackendRedis
				c := buildCache(cfg)
				convey.So(c, convey.ShouldNotBeNil)
				convey.So(c, convey.ShouldHaveSameTypeAs, &cache.RedisCache{})
			})
		})

		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop when the context is cancelled", func() {
				ctx, cancel := context.WithCancel(context.Background())
				done := make(chan struct{})
				go func() {
					startSystemMetricsUpdater(ctx)
					close(done)
				}()
				cancel()

				select {
				case <-done:
				case <-time.After(time.Second):
					t.Fatal("updater did not stop")
				}
			})
		})
	})
}

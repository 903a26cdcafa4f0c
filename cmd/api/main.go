package main

import (
	"context"
	"sync"
	"time"

	"github.com/habitado/go-condo-billing/cmd/setup"
	"github.com/habitado/go-condo-billing/internal/common/graceful"
	"github.com/habitado/go-condo-billing/internal/deliveries/http"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.RepoCache,
		s.Service.Unit,
		s.Service.Invoice,
		s.Service.Reconciliation,
		s.Service.Risk,
		s.Service.Collection,
		s.Service.DLQProcessor,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Info(ctx, "http server stopped!")
}

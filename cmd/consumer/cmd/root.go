package cmd

import (
	"context"
	"log"
	"os"

	"github.com/habitado/go-condo-billing/cmd/setup"
	"github.com/habitado/go-condo-billing/internal/common/graceful"
	"github.com/habitado/go-condo-billing/internal/deliveries/consumer"
	kafkaconsumer "github.com/habitado/go-condo-billing/internal/deliveries/consumer/kafka"
	"github.com/habitado/go-condo-billing/internal/deliveries/http/health"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling billing messages or dlq",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runConsumerCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runConsumerCmdName)
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling billing messages or dlq, available consumer type: task_queue_reconciliation, dlq_retrier, invoice_notification`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)
	xlog.Infof(ctx, "initializing consumer: %s", consumerName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	consumerProcess, consumerStopper, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s.RepoCache, s)
	if err != nil {
		xlog.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	check := health.NewHealthCheck()
	healthCheckProcess := kafkaconsumer.NewHTTPServer(ctx, s.Config, s.Metrics, check)

	starters = append(starters, consumerProcess.Start(), healthCheckProcess.Start())
	// StopProcess reverses the slice, so append in the opposite order of shutdown:
	// health flips to not-ready first, then the consumer drains, then shared
	// resources (producers, DB, cache) close last.
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, consumerStopper...)
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, healthCheckProcess.Stop())
	stoppers = append(stoppers, func(ctx context.Context) error {
		check.Shutdown()
		return nil
	})

	xlog.Info(ctx, "starting consumer services in background...")
	graceful.StartProcessAtBackground(starters...)

	xlog.Infof(ctx, "consumer %s started, waiting for shutdown signal...", consumerName)

	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)

	xlog.Infof(ctx, "consumer %s stopped successfully!", consumerName)
}

package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		SecretKey          string   `json:"secret_key"`
		GcloudProjectID    string   `json:"gcloud_project_id"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		MessageBroker      MessageBroker            `json:"message_broker"`
		CloudStorageConfig CloudStorageConfig       `json:"cloud_storage"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`

		Reconciliation ReconciliationConfig `json:"reconciliation"`
		RiskScoring    RiskScoringConfig    `json:"risk_scoring"`
		Collection     CollectionConfig     `json:"collection"`
		Notification   NotificationConfig   `json:"notification"`

		FeatureFlagSDKConfig FeatureFlagSDKConfig `json:"feature_flag_sdk"`
		FeatureFlagKeyLookup FeatureFlagKeyLookup `json:"feature_flag_key_lookup"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	MessageBroker struct {
		HTTPPort      int            `json:"http_port"`
		KafkaConsumer ConsumerConfig `json:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers []string `json:"brokers"`

		ConsumerGroupReconciliation      string `json:"consumer_group_reconciliation"`
		ConsumerGroupDLQRetrier          string `json:"consumer_group_dlq_retrier"`
		ConsumerGroupInvoiceNotification string `json:"consumer_group_invoice_notification"`

		TopicReconciliation    string `json:"topic_reconciliation"`
		TopicReconciliationDLQ string `json:"topic_reconciliation_dlq"`
		TopicInvoiceEvents     string `json:"topic_invoice_events"`

		Assignor  string `json:"assignor"`
		IsOldest  bool   `json:"is_oldest"`
		IsVerbose bool   `json:"is_verbose"`
	}

	CloudStorageConfig struct {
		BaseURL    string `json:"base_url"`
		BucketName string `json:"bucket_name"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	// ReconciliationConfig tunes the statement pipeline and the matching
	// engine. Thresholds are documented on the matching package.
	ReconciliationConfig struct {
		// ResultURLExpiryTime is the expiry time of the report URL in minutes
		ResultURLExpiryTime int `json:"result_url_expiry_time"`

		MaxFileSizeMB int64 `json:"max_file_size_mb"`

		AutoApplyThreshold  float64 `json:"auto_apply_threshold"`
		MinMargin           float64 `json:"min_margin"`
		AmountTolerance     float64 `json:"amount_tolerance"`
		AmountTolerancePct  float64 `json:"amount_tolerance_pct"`
		DateWindowDays      int     `json:"date_window_days"`
		MinDescriptionScore float64 `json:"min_description_score"`
		SuggestionLimit     int     `json:"suggestion_limit"`

		// PaidAmountTolerance bounds the divergence accepted between a boleto
		// amount and the amount actually settled in a return file.
		PaidAmountTolerance float64 `json:"paid_amount_tolerance"`
	}

	RiskScoringConfig struct {
		WindowMonths int           `json:"window_months"`
		CacheTTL     time.Duration `json:"cache_ttl"`
	}

	CollectionConfig struct {
		// DaysOverdueCap saturates the days-overdue factor of the priority.
		DaysOverdueCap int `json:"days_overdue_cap"`
		QueueLimit     int `json:"queue_limit"`
	}

	NotificationConfig struct {
		BaseUrl       string `json:"base_url"`
		SlackChannel  string `json:"slack_channel"`
		RetryCount    int    `json:"retry_count"`
		RetryWaitTime int    `json:"retry_wait_time"`
		Enabled       bool   `json:"enabled"`
	}

	FeatureFlagSDKConfig struct {
		URL             string        `json:"url"`
		Token           string        `json:"token"`
		Env             string        `json:"env"`
		RefreshInterval time.Duration `json:"refresh_interval"`
	}

	FeatureFlagKeyLookup struct {
		AutoApplyMatching string `json:"auto_apply_matching"`
		RiskModelWeights  string `json:"risk_model_weights"`
	}
)

package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Node     *Node
	Exchange *Exchange
	Mailer   *Mailer
	Gateway  *Gateway
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel       string `env:"LOG_LEVEL"`
	Mode           string `env:"APP_MODE"`
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Node holds the ledger node endpoints. BackupURL is tried once after
// any primary failure, timeout included.
type Node struct {
	URL       string        `env:"NODE_URL"`
	BackupURL string        `env:"BACKUP_NODE_URL"`
	Timeout   time.Duration `env:"NODE_TIMEOUT" envDefault:"10s"`
	// MatchPolicy picks among multiple transactions for one
	// recipient+vendorField pair: first, oldest or mostConfirmed.
	MatchPolicy string `env:"TX_MATCH_POLICY" envDefault:"first"`
}

type Exchange struct {
	URL     string        `env:"EXCHANGE_URL"`
	Timeout time.Duration `env:"EXCHANGE_TIMEOUT" envDefault:"10s"`
}

type Mailer struct {
	URL     string        `env:"MAILER_URL"`
	Timeout time.Duration `env:"MAILER_TIMEOUT" envDefault:"10s"`
}

// Gateway carries the reconciliation policy knobs.
type Gateway struct {
	Confirmations       int64         `env:"CONFIRMATIONS" envDefault:"6"`
	SendStatusMail      bool          `env:"SEND_STATUS_MAIL" envDefault:"false"`
	LedgerCurrency      string        `env:"LEDGER_CURRENCY" envDefault:"ARK"`
	DefaultCurrency     string        `env:"DEFAULT_CURRENCY" envDefault:"EUR"`
	CurrencyFactor      string        `env:"CURRENCY_FACTOR" envDefault:"1"`
	UnitScale           int64         `env:"UNIT_SCALE" envDefault:"100000000"`
	Wallets             []string      `env:"WALLETS" envSeparator:","`
	VendorFieldTemplate string        `env:"VENDOR_FIELD_TEMPLATE" envDefault:"order-%d"`
	PaidStatus          string        `env:"PAID_STATUS" envDefault:"PAID"`
	PaymentMethodID     int           `env:"PAYMENT_METHOD_ID" envDefault:"0"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var node Node
	var exchange Exchange
	var mailer Mailer
	var gateway Gateway
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&node.URL, "n", "", "Ledger node URL")
	flag.StringVar(&node.BackupURL, "b", "", "Backup ledger node URL")
	flag.StringVar(&exchange.URL, "e", "", "Exchange rate service URL")
	flag.StringVar(&mailer.URL, "M", "", "Mailer service URL")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.MetricsAddress, "p", ``, "Prometheus metrics endpoint")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&node)
	if err != nil {
		return nil, fmt.Errorf("error parsing node config: %w", err)
	}
	err = env.Parse(&exchange)
	if err != nil {
		return nil, fmt.Errorf("error parsing exchange config: %w", err)
	}
	err = env.Parse(&mailer)
	if err != nil {
		return nil, fmt.Errorf("error parsing mailer config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Node:     &node,
		Exchange: &exchange,
		Mailer:   &mailer,
		Gateway:  &gateway,
		App:      &app,
	}

	return &config, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/paradex-labs/paradex-go/pkg/account"
	"github.com/paradex-labs/paradex-go/pkg/gateway"
	"github.com/paradex-labs/paradex-go/pkg/logger"
	"github.com/paradex-labs/paradex-go/pkg/quantum"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

func main() {
	// Missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "paradex-signer",
		Usage: "Paradex account derivation and signing utility",
		Description: `Derives the L2 trading key and account address from an L1 wallet,
onboards and authenticates against the venue, and signs orders locally.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "environment",
				Aliases: []string{"e"},
				Value:   string(gateway.EnvironmentTestnet),
				Usage:   "Venue environment: prod or testnet",
				EnvVars: []string{"PARADEX_ENVIRONMENT"},
			},
			&cli.StringFlag{
				Name:    "l1-address",
				Usage:   "L1 wallet address used at onboarding",
				EnvVars: []string{"PARADEX_L1_ADDRESS"},
			},
			&cli.StringFlag{
				Name:    "l1-private-key",
				Usage:   "L1 private key hex; the L2 key is derived from it",
				EnvVars: []string{"PARADEX_L1_PRIVATE_KEY"},
			},
			&cli.StringFlag{
				Name:    "l2-private-key",
				Usage:   "L2 private key hex, used instead of derivation when set",
				EnvVars: []string{"PARADEX_L2_PRIVATE_KEY"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{"PARADEX_VERBOSE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "address",
				Usage:  "Print the derived L2 public key and account address",
				Action: runAddress,
			},
			{
				Name:   "auth",
				Usage:  "Onboard if needed and fetch a session token",
				Action: runAuth,
			},
			{
				Name:   "sign-order",
				Usage:  "Sign an order locally and print it as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "market", Required: true, Usage: "Market symbol, e.g. BTC-USD-PERP"},
					&cli.StringFlag{Name: "side", Required: true, Usage: "BUY or SELL"},
					&cli.StringFlag{Name: "type", Value: "LIMIT", Usage: "Order type"},
					&cli.StringFlag{Name: "size", Required: true, Usage: "Size as a decimal amount"},
					&cli.StringFlag{Name: "price", Usage: "Price as a decimal amount (omit for market orders)"},
				},
				Action: runSignOrder,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func buildAccount(c *cli.Context) (*gateway.Client, *account.Account, *types.SystemConfig, error) {
	env, err := gateway.ParseEnvironment(c.String("environment"))
	if err != nil {
		return nil, nil, nil, err
	}
	zlog, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return nil, nil, nil, err
	}
	client := gateway.NewClient(env, zlog)

	cfg, err := client.FetchSystemConfig(c.Context)
	if err != nil {
		return nil, nil, nil, err
	}

	l1Address := c.String("l1-address")
	var acct *account.Account
	if l2Key := c.String("l2-private-key"); l2Key != "" {
		acct, err = account.FromL2PrivateKeyHex(cfg, l1Address, l2Key)
	} else {
		acct, err = account.FromL1PrivateKey(cfg, l1Address, c.String("l1-private-key"))
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return client, acct, cfg, nil
}

func runAddress(c *cli.Context) error {
	_, acct, _, err := buildAccount(c)
	if err != nil {
		return err
	}
	fmt.Printf("L2 public key:      %s\n", acct.L2PublicKeyHex())
	fmt.Printf("L2 account address: %s\n", acct.L2AddressHex())
	return nil
}

func runAuth(c *cli.Context) error {
	client, acct, _, err := buildAccount(c)
	if err != nil {
		return err
	}
	if err := client.Onboard(c.Context, acct); err != nil {
		return err
	}
	token, err := client.Authenticate(c.Context, acct)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runSignOrder(c *cli.Context) error {
	_, acct, cfg, err := buildAccount(c)
	if err != nil {
		return err
	}

	size, err := quantum.ParseToQuantum(c.String("size"), cfg.ParaclearDecimals)
	if err != nil {
		return err
	}
	builder := types.NewOrderBuilder().
		Market(c.String("market")).
		Side(types.OrderSide(c.String("side"))).
		Type(types.OrderType(c.String("type"))).
		Size(size).
		GeneratedClientID()
	if price := c.String("price"); price != "" {
		p, err := quantum.ParseToQuantum(price, cfg.ParaclearDecimals)
		if err != nil {
			return err
		}
		builder.Price(p)
	}
	order, err := builder.Build()
	if err != nil {
		return err
	}

	if _, err := acct.SignOrder(order); err != nil {
		return err
	}
	out, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

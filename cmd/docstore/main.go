package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/suparena/docstore"
	"github.com/suparena/docstore/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	localFlag    = flag.Bool("local", false, "Target a local development endpoint")
	endpointFlag = flag.String("endpoint", "http://localhost:8000", "Development endpoint URL (local mode)")
	regionFlag   = flag.String("region", "", "AWS region")

	tableFlag    = flag.String("table", "", "Table name for create-table/delete-table")
	hashKeyFlag  = flag.String("hash-key", "id", "Hash key attribute name for create-table")
	hashTypeFlag = flag.String("hash-key-type", "S", "Hash key attribute type (S, N, or B)")
	rangeKeyFlag = flag.String("range-key", "", "Optional range key attribute name for create-table")
	rangeTypeFlag = flag.String("range-key-type", "S", "Range key attribute type (S, N, or B)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: docstore [flags] <list-tables|create-table|delete-table>\n\n")
	flag.PrintDefaults()
}

func main() {
	// Parse flags early to catch version flag
	flag.Usage = usage
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := docstore.GetVersionInfo()
		fmt.Printf("docstore version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	cfg := docstore.ConfigFromEnv()
	if *localFlag {
		cfg.Local = true
		cfg.Endpoint = *endpointFlag
	}
	if *regionFlag != "" {
		cfg.Region = *regionFlag
	}

	ctx := context.Background()
	store, err := docstore.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create store: %v", err)
	}

	switch flag.Arg(0) {
	case "list-tables":
		names, err := store.ListTables(ctx)
		if err != nil {
			log.Fatalf("list-tables failed: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "create-table":
		if *tableFlag == "" {
			log.Fatal("create-table requires -table")
		}
		def := storagemodels.TableDefinition{
			TableName: *tableFlag,
			HashKey: storagemodels.KeyAttribute{
				Name: *hashKeyFlag,
				Type: storagemodels.KeyType(*hashTypeFlag),
			},
		}
		if *rangeKeyFlag != "" {
			def.RangeKey = &storagemodels.KeyAttribute{
				Name: *rangeKeyFlag,
				Type: storagemodels.KeyType(*rangeTypeFlag),
			}
		}
		if _, err := store.CreateTable(ctx, def); err != nil {
			log.Fatalf("create-table failed: %v", err)
		}
		fmt.Printf("table %s created\n", *tableFlag)

	case "delete-table":
		if *tableFlag == "" {
			log.Fatal("delete-table requires -table")
		}
		if _, err := store.DeleteTable(ctx, *tableFlag); err != nil {
			log.Fatalf("delete-table failed: %v", err)
		}
		fmt.Printf("table %s deleted\n", *tableFlag)

	default:
		usage()
		os.Exit(2)
	}
}

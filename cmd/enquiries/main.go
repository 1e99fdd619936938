package main

import (
	"fmt"
	"os"

	"github.com/adampresley/configinator"
	"github.com/domenikresidence/website/pkg/services"
	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

type Config struct {
	DSN   string `flag:"dsn" env:"DSN" default:"file:./data/domenikresidence.db" description:"Data source name"`
	Limit int    `flag:"limit" env:"LIMIT" default:"20" description:"Number of enquiries to show"`
}

/*
Prints recent contact enquiries for operator review. The website never
exposes these over HTTP.
*/
func main() {
	var (
		err error
		db  *sqlz.DB
	)

	config := Config{}
	configinator.Behold(&config)

	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		fmt.Fprintf(os.Stderr, "error connecting to database: %s\n", err)
		os.Exit(1)
	}

	enquiryService := services.NewEnquiryService(services.EnquiryServiceConfig{
		DB: db,
	})

	enquiries, err := enquiryService.GetRecent(config.Limit)

	if err != nil {
		fmt.Fprintf(os.Stderr, "error retrieving enquiries: %s\n", err)
		os.Exit(1)
	}

	if len(enquiries) == 0 {
		fmt.Println("No enquiries.")
		return
	}

	for _, enquiry := range enquiries {
		fmt.Printf("[%s] %s <%s> %s (%s)\n", enquiry.CreatedAt.Format("2006-01-02 15:04"), enquiry.Name, enquiry.Email, enquiry.Phone, enquiry.InquiryType)
		fmt.Printf("    %s\n\n", enquiry.Message)
	}
}

package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"eu-central-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"domenikresidence.com" description:"S3 bucket"`
	ContactFromEmail   string `flag:"contactfrom" env:"CONTACT_FROM_EMAIL" default:"no-reply@domenikresidence.com" description:"From address for contact form emails"`
	ContactFromName    string `flag:"contactfromname" env:"CONTACT_FROM_NAME" default:"DomeNik Residence" description:"From name for contact form emails"`
	DSN                string `flag:"dsn" env:"DSN" default:"file:./data/domenikresidence.db" description:"Data source name"`
	EmailApiKey        string `flag:"emailapikey" env:"RESEND_API_KEY" default:"" description:"API key for sending emails"`
	EmailSendTimeout   int    `flag:"emailsendtimeout" env:"EMAIL_SEND_TIMEOUT" default:"10" description:"Timeout in seconds for each outbound email send"`
	Host               string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxCacheWorkers    int    `flag:"mcc" env:"MAX_CACHE_WORKERS" default:"10" description:"Maximum number of concurrent media cache workers"`
	MediaFolder        string `flag:"mediafolder" env:"MEDIA_FOLDER" default:"apartments" description:"S3 folder for apartment media"`
	NotificationEmail  string `flag:"notificationemail" env:"NOTIFICATION_EMAIL" default:"sales@domenikresidence.com" description:"Recipient for contact form notifications"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

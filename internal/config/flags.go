package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a companion address in format [host]:[port]
//	-d association store sqlite path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-passphrase keystore passphrase
//	-debug enable the request/response recorder
//	-url site URL to search credentials for
//	-search custom search string instead of a URL
func ParseFlags() *StructuredConfig {
	var companionAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var passphrase string
	var debug bool
	var queryURL string
	var searchString string

	flag.Var(&companionAddress, "a", "Companion address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Association store sqlite path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&passphrase, "passphrase", "", "Keystore passphrase")
	flag.BoolVar(&debug, "debug", false, "Record request/response pairs")
	flag.StringVar(&queryURL, "url", "", "Site URL to search credentials for")
	flag.StringVar(&searchString, "search", "", "Custom search string instead of a URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Passphrase: passphrase,
			Debug:      debug,
		},
		Companion: Companion{
			Address:        companionAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Query: Query{
			URL:          queryURL,
			SearchString: searchString,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost", and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

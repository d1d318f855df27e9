package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/andrewatan/httpcall/packages/check"
	"github.com/andrewatan/httpcall/packages/config"
	"github.com/andrewatan/httpcall/packages/format"
	"github.com/andrewatan/httpcall/packages/httpclient"
	"github.com/andrewatan/httpcall/packages/output"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	headerFlags     []string
	headersFileFlag string
	dataFlag        string
	bearerFlag      string
	userFlag        string
	timeoutFlag     time.Duration
	insecureFlag    bool
	noRedirectFlag  bool
	prettyFlag      bool
	noColorFlag     bool
	extractFlag     string
	schemaFlag      string
	watchFlag       bool
	proxyFlag       string
	configFlag      string
	verboseFlag     bool
)

func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, `Request header as "Name: value" (repeatable)`)
	cmd.Flags().StringVar(&headersFileFlag, "headers-file", "", "File with one header per line")
	cmd.Flags().StringVar(&bearerFlag, "bearer", "", "Bearer token for the Authorization header")
	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "Basic auth credentials as user:password")
	cmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Request timeout (default 30s)")
	cmd.Flags().BoolVarP(&insecureFlag, "insecure", "k", false, "Skip TLS certificate verification")
	cmd.Flags().BoolVar(&noRedirectFlag, "no-redirect", false, "Do not follow redirects")
	cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Pretty-print and colorize JSON responses")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&extractFlag, "extract", "", "Print the value at this dotted JSON path")
	cmd.Flags().StringVar(&schemaFlag, "schema", "", "Validate the response body against a JSON Schema file")
	cmd.Flags().StringVar(&proxyFlag, "proxy", "", "Proxy URL for the request")
	cmd.Flags().StringVar(&configFlag, "config", "", "Path to config file (default: .httpcall.yml)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output (headers, exchange summary)")

	if withBody {
		cmd.Flags().StringVarP(&dataFlag, "data", "d", "", "JSON request body, inline or @file")
		cmd.Flags().BoolVar(&watchFlag, "watch", false, "With -d @file: re-send whenever the file changes")
	}
}

func sendCommand(cmd *cobra.Command, method, url string) error {
	fileCfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag),
		output.WithNoColor(noColorFlag || fileCfg.GetNoColor()),
	)

	client := buildClient(fileCfg)
	reqCfg, err := buildRequestConfig()
	if err != nil {
		return err
	}

	bodyPath := strings.TrimPrefix(dataFlag, "@")
	if bodyPath == dataFlag {
		bodyPath = ""
	}

	if watchFlag && bodyPath == "" {
		return fmt.Errorf("--watch requires a file body (-d @file); inline bodies have nothing to watch")
	}

	send := func() error {
		body := dataFlag
		if bodyPath != "" {
			data, err := os.ReadFile(bodyPath)
			if err != nil {
				return fmt.Errorf("cannot read body file %s: %w", bodyPath, err)
			}
			body = string(data)
		}

		resp, err := dispatch(client, method, url, body, reqCfg)
		if err != nil {
			return err
		}

		printer.PrintResponse(resp, reqCfg.PrettyPrint)
		if verboseFlag {
			printer.PrintStats(httpclient.NewStats(method, url, resp))
		}

		if extractFlag != "" {
			value, err := format.ExtractJSONPath(resp.Body, extractFlag)
			if err != nil {
				return err
			}
			printer.PrintValue(value)
		}

		if schemaFlag != "" {
			if err := check.ValidateSchema(resp, schemaFlag); err != nil {
				return err
			}
			printer.Println("Schema: OK")
		}

		return nil
	}

	if watchFlag {
		if err := send(); err != nil {
			printer.PrintError(err)
		}
		return watchAndResend(cmd, bodyPath, printer, send)
	}

	return send()
}

func dispatch(client *httpclient.Client, method, url, body string, cfg httpclient.Config) (*httpclient.Response, error) {
	switch method {
	case http.MethodGet:
		return client.Get(url, cfg)
	case http.MethodDelete:
		return client.Delete(url, cfg)
	case http.MethodPost:
		return client.Post(url, body, cfg)
	case http.MethodPut:
		return client.Put(url, body, cfg)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
}

func buildClient(fileCfg *config.Config) *httpclient.Client {
	var opts []httpclient.ClientOption

	timeout := time.Duration(fileCfg.Timeout) * time.Millisecond
	if timeoutFlag > 0 {
		timeout = timeoutFlag
	}
	if timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(timeout))
	}

	if fileCfg.UserAgent != "" {
		opts = append(opts, httpclient.WithUserAgent(fileCfg.UserAgent))
	}
	if len(fileCfg.Headers) > 0 {
		opts = append(opts, httpclient.WithDefaultHeaders(fileCfg.Headers))
	}

	opts = append(opts, httpclient.WithFollowRedirects(fileCfg.GetFollowRedirects() && !noRedirectFlag))
	if fileCfg.MaxRedirects > 0 {
		opts = append(opts, httpclient.WithMaxRedirects(fileCfg.MaxRedirects))
	}

	opts = append(opts, httpclient.WithTLSVerification(fileCfg.GetValidateTLS() && !insecureFlag))

	proxy := fileCfg.Proxy
	if proxyFlag != "" {
		proxy = proxyFlag
	}
	if proxy != "" {
		opts = append(opts, httpclient.WithProxy(proxy))
	}

	return httpclient.NewClient(opts...)
}

func buildRequestConfig() (httpclient.Config, error) {
	cfg := httpclient.NewConfig().WithPrettyPrint(prettyFlag)
	if noRedirectFlag {
		cfg = cfg.WithRedirects(false)
	}
	if insecureFlag {
		cfg = cfg.WithTLSVerification(false)
	}

	if headersFileFlag != "" {
		data, err := os.ReadFile(headersFileFlag)
		if err != nil {
			return cfg, fmt.Errorf("cannot read headers file %s: %w", headersFileFlag, err)
		}
		headers, err := format.ParseHeaderBlock(string(data))
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithHeaders(headers)
	}

	if len(headerFlags) > 0 {
		headers, err := format.ParseHeaderBlock(strings.Join(headerFlags, "\n"))
		if err != nil {
			return cfg, err
		}
		for k, v := range headers {
			cfg = cfg.AddHeader(k, v)
		}
	}

	if bearerFlag != "" {
		cfg = cfg.WithBearerToken(bearerFlag)
	}
	if userFlag != "" {
		username, password, ok := strings.Cut(userFlag, ":")
		if !ok {
			return cfg, fmt.Errorf("--user must be in user:password form")
		}
		cfg = cfg.WithBasicAuth(username, password)
	}

	return cfg, nil
}

func watchAndResend(cmd *cobra.Command, path string, printer *output.Printer, send func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", path)

	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\nRe-sending request...\n\n", event.Name)
					if err := send(); err != nil {
						printer.PrintError(err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", path)
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printer.PrintError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

// Command ak is a CLI client for the authkeeper service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "authkeeper")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "authkeeper")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func userIDPath() string { return filepath.Join(cfgDir(), "user_id") }

func saveToken(tok string, exp time.Time) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

func saveUserID(uid string) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	return os.WriteFile(userIDPath(), []byte(strings.TrimSpace(uid)), 0o600)
}

func loadUserID() (string, error) {
	b, err := os.ReadFile(userIDPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// clearSession forgets the stored token and user id.
func clearSession() {
	_ = os.Remove(tokenPath())
	_ = os.Remove(userIDPath())
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(ctx context.Context, g *globalOptions, bearer string) (*grpc.ClientConn, error) {
	var creds credentials.TransportCredentials
	if g.Plaintext {
		creds = insecure.NewCredentials()
	} else {
		var err error
		if creds, err = loadTLS(g.CACert, g.Insecure); err != nil {
			return nil, err
		}
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !g.Plaintext}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	return grpc.DialContext(ctx, g.Addr, opts...)
}

// dialFn is replaced in tests.
var dialFn = dial

// ---- utils ----

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printProto(m proto.Message) {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(b))
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func choose(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

type globalOptions struct {
	Addr      string `long:"addr" default:"localhost:8443" description:"server address"`
	CACert    string `long:"cacert" description:"CA certificate (PEM)"`
	Insecure  bool   `long:"insecure" description:"skip certificate verification (dev)"`
	Plaintext bool   `long:"plaintext" description:"connect without TLS (dev)"`
	DSN       string `long:"dsn" env:"AUTHKEEPER_POSTGRES_DSN" description:"PostgreSQL DSN for client-* commands"`
}

type versionCmd struct{}

func (versionCmd) Execute([]string) error {
	fmt.Printf("ak %s (%s)\n", version, buildDate)
	return nil
}

func newParser(g *globalOptions) *flags.Parser {
	p := flags.NewNamedParser("ak", flags.HelpFlag|flags.PassDoubleDash)
	if _, err := p.AddGroup("Global options", "", g); err != nil {
		panic(err)
	}
	cmds := []struct {
		name, short string
		data        any
	}{
		{"version", "print version", &versionCmd{}},
		{"signup", "create an account", &signupCmd{g: g}},
		{"login", "log in and save the session token", &loginCmd{g: g}},
		{"logout", "end the saved session", &logoutCmd{g: g}},
		{"validate", "check the saved session", &validateCmd{g: g}},
		{"whoami", "show the logged-in user", &whoamiCmd{g: g}},
		{"client-add", "register an OAuth2 client (direct DB access)", &clientAddCmd{g: g}},
		{"client-show", "show a registered client (direct DB access)", &clientShowCmd{g: g}},
	}
	for _, c := range cmds {
		if _, err := p.AddCommand(c.name, c.short, "", c.data); err != nil {
			panic(err)
		}
	}
	return p
}

// main dispatches subcommands; every command reports errors through fail.
func main() {
	var g globalOptions
	if _, err := newParser(&g).Parse(); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Println(fe.Message)
			return
		}
		fail(err)
	}
}

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

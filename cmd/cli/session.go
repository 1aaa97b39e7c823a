package main

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
)

// tokenHeader is the response header Login puts the session token in.
const tokenHeader = "auth-token"

type credentialOptions struct {
	Email    string `short:"e" long:"email" required:"true" description:"account email"`
	Password string `short:"p" long:"password" required:"true" description:"account password"`
}

type signupCmd struct {
	credentialOptions
	g *globalOptions
}

// Execute creates an account and prints its profile.
func (c *signupCmd) Execute([]string) error {
	ctx, cancel := withTimeout()
	defer cancel()
	cc, err := dialFn(ctx, c.g, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	resp, err := pb.NewAuthKeeperClient(cc).SignUp(ctx, &pb.SignUpRequest{Email: c.Email, Password: c.Password})
	if err != nil {
		return err
	}
	printProto(resp.GetUser())
	return nil
}

type loginCmd struct {
	credentialOptions
	g *globalOptions
}

// Execute logs in and stores the token from the auth-token header together with the user id.
func (c *loginCmd) Execute([]string) error {
	ctx, cancel := withTimeout()
	defer cancel()
	cc, err := dialFn(ctx, c.g, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	var hdr metadata.MD
	resp, err := pb.NewAuthKeeperClient(cc).Login(ctx,
		&pb.LoginRequest{Email: c.Email, Password: c.Password}, grpc.Header(&hdr))
	if err != nil {
		return err
	}
	toks := hdr.Get(tokenHeader)
	if len(toks) == 0 || toks[0] == "" {
		return fmt.Errorf("server sent no %s header", tokenHeader)
	}
	if err := saveToken(toks[0], resp.GetExpiresAt().AsTime()); err != nil {
		return err
	}
	if err := saveUserID(resp.GetUser().GetId()); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

// loadSession returns the stored token and user id.
func loadSession() (string, string, error) {
	tok, err := loadToken()
	if err != nil {
		return "", "", err
	}
	uid, err := loadUserID()
	if err != nil {
		return "", "", fmt.Errorf("no user id (login required): %w", err)
	}
	return tok, uid, nil
}

type logoutCmd struct{ g *globalOptions }

// Execute ends the stored session on the server and forgets it locally.
func (c *logoutCmd) Execute([]string) error {
	tok, uid, err := loadSession()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout()
	defer cancel()
	cc, err := dialFn(ctx, c.g, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	if _, err := pb.NewAuthKeeperClient(cc).Logout(ctx, &pb.LogoutRequest{Token: tok, UserId: uid}); err != nil {
		return err
	}
	clearSession()
	fmt.Println("ok")
	return nil
}

type validateCmd struct{ g *globalOptions }

func (c *validateCmd) Execute([]string) error {
	tok, uid, err := loadSession()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout()
	defer cancel()
	cc, err := dialFn(ctx, c.g, "")
	if err != nil {
		return err
	}
	defer cc.Close()

	resp, err := pb.NewAuthKeeperClient(cc).Validate(ctx, &pb.ValidateRequest{Token: tok, UserId: uid})
	if err != nil {
		return err
	}
	fmt.Println(resp.GetStatus())
	return nil
}

type whoamiCmd struct{ g *globalOptions }

func (c *whoamiCmd) Execute([]string) error {
	tok, err := loadToken()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout()
	defer cancel()
	cc, err := dialFn(ctx, c.g, tok)
	if err != nil {
		return err
	}
	defer cc.Close()

	resp, err := pb.NewAuthKeeperClient(cc).GetUser(ctx, &pb.GetUserRequest{})
	if err != nil {
		return err
	}
	printProto(resp.GetUser())
	return nil
}

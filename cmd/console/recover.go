package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
)

// recovery flow states ; advance only on a truthy success message
type recoverState int

const (
	awaitingEmail recoverState = iota
	awaitingOtp
	awaitingNewPassword
	recoverDone
)

func recoverCMD() *cli.Command {
	return &cli.Command{
		Name:  "recover",
		Usage: "Reset a forgotten admin password (e-mail, OTP, new password)",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "email",
				Usage: "Account e-mail ; prompted when omitted",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {
				return recoverFlow(ctx, srv, c.String("email"),
					bufio.NewReader(os.Stdin),
				)
			})
		},
	}
}

// recoverFlow drives the three-step reset conversation.
// Any failed step halts the machine at its current state ;
// the caller re-runs the command to retry from the start.
func recoverFlow(ctx context.Context, srv *console.Service, email string, input *bufio.Reader) error {

	sessions := srv.Options().Sessions
	state := awaitingEmail

	for state != recoverDone {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		switch state {

		case awaitingEmail:
			if email == "" {
				email = prompt(input, "e-mail")
			}
			if email == "" {
				return errors.BadRequest(
					errors.Id("console.recover.email.required"),
					errors.Message("recover( email: ! ) ; required"),
				)
			}
			text, err := sessions.SendOtp(ctx, email)
			if err != nil {
				return err
			}
			success(text)
			state = awaitingOtp

		case awaitingOtp:
			otp := prompt(input, "one-time code")
			text, err := sessions.VerifyOtp(ctx, otp)
			if err != nil {
				return err
			}
			success(text)
			state = awaitingNewPassword

		case awaitingNewPassword:
			password := prompt(input, "new password")
			text, err := sessions.ResetPassword(ctx, email, password)
			if err != nil {
				return err
			}
			success(text)
			state = recoverDone
		}
	}

	fmt.Println(styleMuted.Render("sign in with the new password: login -u " + email))
	return nil
}

func prompt(input *bufio.Reader, label string) string {
	fmt.Print(styleTitle.Render(label+": "), "")
	line, _ := input.ReadString('\n')
	return strings.TrimSpace(line)
}

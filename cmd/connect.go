package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ebfe/scard"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/gregLibert/hotp-verification/pkg/iso7816"
)

var (
	errNoReader       = errors.New("no smart card reader found")
	errReaderNotFound = errors.New("no reader matches")
)

// connectFunc opens the token behind the reader matching name.
// The returned function releases the connection.
type connectFunc func(name string) (iso7816.Transmitter, func(), error)

// connect is replaced in tests.
var connect connectFunc = connectCard

func connectCard(name string) (iso7816.Transmitter, func(), error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, nil, fmt.Errorf("establish PC/SC context: %w", err)
	}

	release := func() {
		if err := ctx.Release(); err != nil {
			log.Warn().Err(err).Msg("failed to release context")
		}
	}

	readers, err := ctx.ListReaders()
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("list readers: %w", err)
	}

	reader, err := pickReader(readers, name)
	if err != nil {
		release()
		return nil, nil, err
	}
	log.Debug().Str("reader", reader).Msg("using reader")

	// T=0 or T=1 must be requested explicitly, otherwise some readers fail with "Parameter Incorrect".
	card, err := ctx.Connect(reader, scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("connect to %q: %w", reader, err)
	}

	return card, func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			log.Warn().Err(err).Msg("failed to disconnect card")
		}
		release()
	}, nil
}

func listReaders() ([]string, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, fmt.Errorf("establish PC/SC context: %w", err)
	}
	defer func() {
		if err := ctx.Release(); err != nil {
			log.Warn().Err(err).Msg("failed to release context")
		}
	}()

	readers, err := ctx.ListReaders()
	if err != nil && !errors.Is(err, scard.ErrNoReadersAvailable) {
		return nil, fmt.Errorf("list readers: %w", err)
	}
	return readers, nil
}

// pickReader returns the first reader whose name contains want, ignoring case.
// An empty want selects the first reader.
func pickReader(readers []string, want string) (string, error) {
	if len(readers) == 0 {
		return "", errNoReader
	}

	want = strings.ToLower(strings.TrimSpace(want))
	matches := lo.Filter(readers, func(r string, _ int) bool {
		return strings.Contains(strings.ToLower(r), want)
	})
	if len(matches) == 0 {
		return "", fmt.Errorf("%w %q among %d readers", errReaderNotFound, want, len(readers))
	}
	if len(matches) > 1 {
		log.Debug().Strs("candidates", matches).Msg("several readers match, using the first")
	}
	return matches[0], nil
}

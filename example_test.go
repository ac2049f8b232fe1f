package goBearer_test

import (
	"errors"
	"fmt"

	goBearer "github.com/MrEthical07/goBearer"
	"github.com/MrEthical07/goBearer/base62"
	"github.com/MrEthical07/goBearer/symmetric"
	"github.com/google/uuid"
)

const examplePlayerToken = "a0m0sBKoOiv9p3BhK7SWofR5FXPRFfc33uJNLhmubtLzjbpVSAG3ukJXANu3SeIJoc6griaFurwu4s6auYiZyxuETkuXZV0wZ4TyqYzoOvNbf"

// ExampleNew builds a codec that issues and accepts the legacy format.
func ExampleNew() {
	codec, err := goBearer.New().Build()
	if err != nil {
		panic(err)
	}

	text, player, err := codec.IssuePlayer(uuid.New(), uuid.New(), "HTTW10", "TSTHTTW10")
	if err != nil {
		panic(err)
	}
	back, err := codec.DecodePlayer(text)
	if err != nil {
		panic(err)
	}
	fmt.Println(back.TokenID == player.TokenID, back.Name)
	// Output: true HTTW10
}

// ExampleCodec_DecodeUser shows how expiry is told apart from other failures.
func ExampleCodec_DecodeUser() {
	codec, _ := goBearer.New().Build()

	_, err := codec.DecodeUser(examplePlayerToken)
	fmt.Println(errors.Is(err, goBearer.ErrExpiredToken))

	u, _ := codec.DecodeUser(examplePlayerToken, goBearer.IgnoreExpiry())
	fmt.Println(u.Kind(), u.DisplayName())

	_, err = codec.DecodeBrand(examplePlayerToken, goBearer.IgnoreExpiry())
	fmt.Println(errors.Is(err, goBearer.ErrInvalidToken), errors.Is(err, goBearer.ErrKindMismatch))
	// Output:
	// true
	// player HTTW10
	// true true
}

// ExampleBuilder_WithFormat adds a tagged format next to the legacy one.
func ExampleBuilder_WithFormat() {
	codec, err := goBearer.New().
		WithFormat(goBearer.Format{
			Version:       2,
			Encoding:      base62.BigInt,
			Cipher:        symmetric.LegacySettings(),
			Tagged:        true,
			CanonicalGUID: true,
		}).
		WithIssueVersion(2).
		Build()
	if err != nil {
		panic(err)
	}

	text, _, _ := codec.IssueBrand(uuid.New())
	_, f, _ := codec.Inspect(text)
	fmt.Println(f)

	_, f, _ = codec.Inspect(examplePlayerToken)
	fmt.Println(f)
	// Output:
	// v2/bigint/tagged
	// v1/bitpack/untagged
}

// ExampleCodec_MetricsSnapshot reads in-process counters.
func ExampleCodec_MetricsSnapshot() {
	codec, _ := goBearer.New().WithMetricsEnabled(true).Build()
	_, _ = codec.DecodePlayer("8Yt3")

	snap := codec.MetricsSnapshot()
	fmt.Println(snap.Counters[goBearer.MetricDecodeInvalid])
	// Output: 1
}

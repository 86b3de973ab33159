// Package selosign is a client for the Selosign document-signing service.
//
// The package splits into a self-validating model layer and a thin transport
// around it. Entities (envelopes, signers, documents, requirements,
// qualifications, notifications) live in the entity package; each validates
// itself against its business-rule contract and serializes into the wire
// resource format. The Client in this package forwards serialized entities
// to the remote API and performs no validation of its own beyond refusing to
// send invalid entities.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // handle
//	}
//	client, err := selosign.New(cfg,
//	    selosign.WithLogger(logger.New(logger.WithLevel(slog.LevelDebug))),
//	)
//	if err != nil {
//	    // handle
//	}
//
//	env, err := entity.NewEnvelope(entity.EnvelopeAttrs{Name: "Contract"})
//	if err != nil {
//	    // aggregated field errors
//	}
//	raw, err := client.Envelopes().Create(ctx, env)
package selosign

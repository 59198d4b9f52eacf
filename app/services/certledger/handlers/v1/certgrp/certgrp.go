// Package certgrp maintains the group of handlers for institution and
// certificate access.
package certgrp

import (
	"context"
	"errors"
	"net/http"

	"github.com/certchain/certledger/business/core/ledger"
	v1 "github.com/certchain/certledger/business/web/v1"
	"github.com/certchain/certledger/foundation/validate"
	"github.com/certchain/certledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of certificate ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Core
}

// Register adds a new institution and seals its registration transaction.
func (h Handlers) Register(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app AppNewInstitution
	if err := web.Decode(r, &app); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	if err := validate.Check(app); err != nil {
		return err
	}

	h.Log.Infow("register institution", "traceid", v.TraceID, "name", app.Name)

	result, err := h.Ledger.RegisterInstitution(ctx, ledger.NewInstitution{
		Name:           app.Name,
		ContactAddress: app.ContactAddress,
		Email:          app.Email,
	})
	if err != nil {
		return v1.NewRequestError(err, http.StatusInternalServerError)
	}

	resp := AppRegisterResult{
		InstitutionID: result.Institution.ID,
		WalletAddress: result.Institution.WalletAddress,
		TxHash:        result.TxHash,
		BlockNumber:   result.BlockNumber,
		GasUsed:       result.GasUsed,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// QueryInstitutions returns all registered institutions.
func (h Handlers) QueryInstitutions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	institutions, err := h.Ledger.QueryInstitutions(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, institutions, http.StatusOK)
}

// Issue creates a new certificate and seals its issuance transaction.
func (h Handlers) Issue(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app AppNewCertificate
	if err := web.Decode(r, &app); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	if err := validate.Check(app); err != nil {
		return err
	}

	h.Log.Infow("issue certificate", "traceid", v.TraceID, "recipient", app.RecipientName, "course", app.CourseName)

	result, err := h.Ledger.IssueCertificate(ctx, ledger.NewCertificate{
		RecipientName:  app.RecipientName,
		CourseName:     app.CourseName,
		CompletionDate: app.CompletionDate,
		Grade:          app.Grade,
		InstitutionID:  app.InstitutionID,
		IssuerWallet:   app.IssuerWallet,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return v1.NewRequestError(err, http.StatusNotFound)
		}
		return v1.NewRequestError(err, http.StatusInternalServerError)
	}

	resp := AppIssueResult{
		CertificateID:   result.Certificate.ID,
		CertificateHash: result.Certificate.Hash,
		TxHash:          result.TxHash,
		BlockNumber:     result.BlockNumber,
		GasUsed:         result.GasUsed,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// QueryCertificates returns all issued certificates.
func (h Handlers) QueryCertificates(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	certificates, err := h.Ledger.QueryCertificates(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, certificates, http.StatusOK)
}

// Verify re-confirms a certificate exists and records an audit transaction.
func (h Handlers) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	hash := web.Param(r, "hash")

	result, err := h.Ledger.VerifyCertificate(ctx, hash)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return v1.NewRequestError(err, http.StatusNotFound)
		}
		return v1.NewRequestError(err, http.StatusInternalServerError)
	}

	resp := AppVerifyResult{
		Verified:        result.Verified,
		CertificateHash: result.Certificate.Hash,
		RecipientName:   result.Certificate.RecipientName,
		CourseName:      result.Certificate.CourseName,
		CompletionDate:  result.Certificate.CompletionDate,
		Grade:           result.Certificate.Grade,
		InstitutionID:   result.Certificate.InstitutionID,
		InstitutionName: result.Certificate.InstitutionName,
		IssuedTxHash:    result.Certificate.TxHash,
		IssuedBlock:     result.Certificate.BlockNumber,
		AuditTxHash:     result.TxHash,
		AuditBlock:      result.BlockNumber,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

package database

import (
	"errors"
	"memoless-api/model"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
)

// IRegistrationRepository ... persistence of registration attempts
type IRegistrationRepository interface {
	IRepository
	CreatePending(registration *model.Registration) error
	SetTxHash(id string, txHash string) error
	ConfirmRegistration(id string, confirmation model.Confirmation) error
	MarkFailed(id string, txHash string, reason string) error
	GetRegistration(id string, registration *model.Registration) error
	FetchByReference(asset, reference string, registrations *[]model.Registration) error
}

// RegistrationRepository ...
type RegistrationRepository struct {
	BaseRepository
}

var errNotPending = errors.New("registration is no longer pending")

// CreatePending ... inserts a new pending registration, assigning its ID
func (repo *RegistrationRepository) CreatePending(registration *model.Registration) error {
	registration.Status = constants.REGISTRATION_PENDING
	return repo.Create(registration)
}

// SetTxHash ... records the broadcast hash on a pending registration
func (repo *RegistrationRepository) SetTxHash(id string, txHash string) error {
	return repo.updatePending(id, map[string]interface{}{"tx_hash": txHash})
}

// ConfirmRegistration ... writes status and every reference field in one statement
func (repo *RegistrationRepository) ConfirmRegistration(id string, confirmation model.Confirmation) error {
	if !confirmation.Valid() {
		return appError.Err{ErrCode: http.StatusInternalServerError, ErrType: errorcode.SERVER_ERR_CODE,
			Err: errors.New("confirmation requires reference, height and registering address")}
	}
	return repo.updatePending(id, map[string]interface{}{
		"status":           constants.REGISTRATION_CONFIRMED,
		"reference":        confirmation.Reference,
		"reference_length": confirmation.ReferenceLength,
		"height":           confirmation.Height,
		"registered_by":    confirmation.RegisteredBy,
		"decimals":         confirmation.Decimals,
		"minimum_amount":   confirmation.MinimumAmount,
	})
}

// MarkFailed ... terminal failure; txHash is kept when the broadcast went through
func (repo *RegistrationRepository) MarkFailed(id string, txHash string, reason string) error {
	update := map[string]interface{}{
		"status":         constants.REGISTRATION_FAILED,
		"failure_reason": reason,
	}
	if txHash != "" {
		update["tx_hash"] = txHash
	}
	return repo.updatePending(id, update)
}

func (repo *RegistrationRepository) updatePending(id string, update map[string]interface{}) error {
	result := repo.DB.Model(&model.Registration{}).
		Where("id = ? AND status = ?", id, constants.REGISTRATION_PENDING).
		Updates(update)
	if result.Error != nil {
		logger.Error("Error with repository update of registration %s : %s", id, result.Error)
		return repoError(result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Error("Registration %s was not updated : %s", id, errNotPending)
		return appError.Err{ErrCode: http.StatusConflict, ErrType: errorcode.SERVER_ERR_CODE, Err: errNotPending}
	}
	return nil
}

// GetRegistration ...
func (repo *RegistrationRepository) GetRegistration(id string, registration *model.Registration) error {
	if err := repo.Get(id, registration); err != nil {
		appErr := appError.As(err, errorcode.SERVER_ERR_CODE)
		if appErr.ErrType == errorcode.RECORD_NOT_FOUND {
			appErr.ErrType = errorcode.REGISTRATION_NOT_FOUND
		}
		return appErr
	}
	return nil
}

// FetchByReference ... registrations that were confirmed with reference for asset, newest first
func (repo *RegistrationRepository) FetchByReference(asset, reference string, registrations *[]model.Registration) error {
	if err := repo.DB.Where("asset = ? AND reference = ?", asset, reference).Order("created_at desc").Find(registrations).Error; err != nil {
		logger.Error("Error with repository FetchByReference : %s", err)
		return repoError(err)
	}
	return nil
}

package database

import (
	"errors"
	"memoless-api/model"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/errorcode"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RegistrationRepositorySuite struct {
	suite.Suite
	DB         *gorm.DB
	mock       sqlmock.Sqlmock
	repository RegistrationRepository
}

func TestRegistrationRepository(t *testing.T) {
	suite.Run(t, new(RegistrationRepositorySuite))
}

func (s *RegistrationRepositorySuite) SetupTest() {
	db, mock, err := sqlmock.New()
	require.NoError(s.T(), err)

	s.DB, err = gorm.Open("mysql", db)
	require.NoError(s.T(), err)
	s.mock = mock
	s.repository = RegistrationRepository{BaseRepository: BaseRepository{Database: Database{DB: s.DB}}}
}

func (s *RegistrationRepositorySuite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *RegistrationRepositorySuite) Test_CreatePendingAssignsIDAndStatus() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `registrations`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	registration := model.Registration{Asset: "BTC.BTC", Memo: "=:ETH.ETH:0xabc"}
	err := s.repository.CreatePending(&registration)

	require.NoError(s.T(), err)
	s.NotEqual(uuid.Nil, registration.ID)
	s.Equal(constants.REGISTRATION_PENDING, registration.Status)
	s.Nil(registration.TxHash)
}

func (s *RegistrationRepositorySuite) Test_ConfirmRegistrationIsASingleGuardedUpdate() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE `registrations` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.repository.ConfirmRegistration("0b7c5c5e-3c3e-4b43-a3b2-111111111111", model.Confirmation{
		Reference:       "00023",
		ReferenceLength: 5,
		Height:          1200,
		RegisteredBy:    "thor1hot",
		Decimals:        6,
		MinimumAmount:   "0.100023",
	})
	require.NoError(s.T(), err)
}

func (s *RegistrationRepositorySuite) Test_ConfirmRegistrationRejectsPartialConfirmation() {
	err := s.repository.ConfirmRegistration("id", model.Confirmation{Reference: "00023", Height: 10})

	require.Error(s.T(), err)
	s.Equal(http.StatusInternalServerError, appError.As(err, "").ErrCode)
}

func (s *RegistrationRepositorySuite) Test_UpdateOfTerminalRegistrationConflicts() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE `registrations` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.repository.MarkFailed("id", "", "broadcast failed")

	require.Error(s.T(), err)
	s.Equal(http.StatusConflict, appError.As(err, "").ErrCode)
}

func (s *RegistrationRepositorySuite) Test_SetTxHashDuplicateHash() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE `registrations` SET")).
		WillReturnError(errors.New("Error 1062: Duplicate entry 'ABC' for key 'tx_hash'"))
	s.mock.ExpectRollback()

	err := s.repository.SetTxHash("id", "ABC")

	require.Error(s.T(), err)
	appErr := appError.As(err, "")
	s.Equal(http.StatusConflict, appErr.ErrCode)
	s.Equal(errorcode.DUPLICATE_RECORD, appErr.ErrType)
	s.Equal("Duplicate entry 'ABC' for key 'tx_hash'", appErr.Error())
}

func (s *RegistrationRepositorySuite) Test_SetTxHashDatabaseError() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE `registrations` SET")).
		WillReturnError(errors.New("Error 1205: Lock wait timeout exceeded"))
	s.mock.ExpectRollback()

	err := s.repository.SetTxHash("id", "ABC")

	require.Error(s.T(), err)
	s.Equal(errorcode.SERVER_ERR_CODE, appError.As(err, "").ErrType)
}

func (s *RegistrationRepositorySuite) Test_GetRegistrationNotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `registrations`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	registration := model.Registration{}
	err := s.repository.GetRegistration("missing", &registration)

	require.Error(s.T(), err)
	appErr := appError.As(err, "")
	s.Equal(http.StatusNotFound, appErr.ErrCode)
	s.Equal(errorcode.REGISTRATION_NOT_FOUND, appErr.ErrType)
}

func (s *RegistrationRepositorySuite) Test_GetRegistrationFound() {
	id := uuid.NewV4()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "asset", "memo", "status", "tx_hash", "reference", "reference_length", "height", "registered_by"}).
		AddRow(id.String(), time.Now(), time.Now(), "BTC.BTC", "=:ETH.ETH:0xabc", constants.REGISTRATION_CONFIRMED, "ABC", "00023", 5, 1200, "thor1hot")
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `registrations`")).
		WithArgs(id.String()).
		WillReturnRows(rows)

	registration := model.Registration{}
	err := s.repository.GetRegistration(id.String(), &registration)

	require.NoError(s.T(), err)
	s.Equal(id, registration.ID)
	s.Equal("00023", registration.Reference)
	s.Equal("ABC", registration.Hash())
	s.Equal(int64(1200), registration.Height)
}

func (s *RegistrationRepositorySuite) Test_FetchByReference() {
	rows := sqlmock.NewRows([]string{"id", "asset", "reference"}).
		AddRow(uuid.NewV4().String(), "BTC.BTC", "00023").
		AddRow(uuid.NewV4().String(), "BTC.BTC", "00023")
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `registrations`")).
		WithArgs("BTC.BTC", "00023").
		WillReturnRows(rows)

	registrations := []model.Registration{}
	err := s.repository.FetchByReference("BTC.BTC", "00023", &registrations)

	require.NoError(s.T(), err)
	s.Len(registrations, 2)
}

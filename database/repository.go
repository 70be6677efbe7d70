package database

import (
	"errors"
	"memoless-api/utility/appError"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
	"strings"

	"github.com/jinzhu/gorm"
)

// IRepository ... Interface definition for IRepository
type IRepository interface {
	Get(id interface{}, model interface{}) error
	Create(model interface{}) error
}

// BaseRepository ... Model definition for database base repository
type BaseRepository struct {
	Database
}

// Get ... Retrieves a specified record from the database for a given id
func (repo *BaseRepository) Get(id interface{}, model interface{}) error {
	if err := repo.DB.Where("id = ?", id).First(model).Error; err != nil {
		logger.Error("Error with repository Get : %+v", err)
		return repoError(err)
	}
	return nil
}

// Create ... Create a record on the database for a the given model
func (repo *BaseRepository) Create(model interface{}) error {
	if err := repo.DB.Create(model).Error; err != nil {
		logger.Error("Error with repository Create : %s", err)
		return repoError(err)
	}
	return nil
}

func repoError(err error) error {
	if strings.HasPrefix(err.Error(), "Error 1062") {
		return appError.Err{
			ErrType: errorcode.DUPLICATE_RECORD,
			ErrCode: http.StatusConflict,
			Err:     errors.New(strings.TrimSpace(appError.GetSQLErr(err))),
		}
	}
	if gorm.IsRecordNotFoundError(err) {
		return appError.Err{
			ErrType: errorcode.RECORD_NOT_FOUND,
			ErrCode: http.StatusNotFound,
			Err:     err,
		}
	}
	return appError.Err{
		ErrType: errorcode.SERVER_ERR_CODE,
		ErrCode: http.StatusInternalServerError,
		Err:     err,
	}
}

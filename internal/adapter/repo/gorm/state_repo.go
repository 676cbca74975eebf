package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gildworks/internal/adapter/repo/gorm/model"
	"gildworks/internal/app/ports"
	"gildworks/internal/domain/tycoon"

	"gorm.io/gorm"
)

// defaultSaveKey names the single save slot. The engine owns one
// state per process; multiple slots would only ever matter for tools.
const defaultSaveKey = "default"

type GameStateRepo struct {
	db *gorm.DB
}

func NewGameStateRepo(db *gorm.DB) GameStateRepo {
	return GameStateRepo{db: db}
}

func (r GameStateRepo) Load(ctx context.Context) (*tycoon.GameState, error) {
	var m model.GameState
	err := getDBFromCtx(ctx, r.db).Where("save_key = ?", defaultSaveKey).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var state tycoon.GameState
	if err := json.Unmarshal(m.Payload, &state); err != nil {
		return nil, err
	}
	state.Version = m.Version
	return &state, nil
}

func (r GameStateRepo) SaveWithVersion(ctx context.Context, state *tycoon.GameState, expectedVersion int64) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)

	if expectedVersion == 0 {
		m := model.GameState{
			SaveKey: defaultSaveKey,
			Payload: payload,
			Version: state.Version,
		}
		return db.Create(&m).Error
	}

	res := db.Model(&model.GameState{}).
		Where("save_key = ? AND version = ?", defaultSaveKey, expectedVersion).
		Updates(map[string]any{
			"payload": payload,
			"version": state.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

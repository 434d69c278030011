package repo

import (
	"gorm.io/datatypes"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

func datatypesImages(in []model.Image) datatypes.JSONSlice[model.Image] {
	return datatypes.JSONSlice[model.Image](in)
}

func datatypesStrings(in []string) datatypes.JSONSlice[string] {
	return datatypes.JSONSlice[string](in)
}

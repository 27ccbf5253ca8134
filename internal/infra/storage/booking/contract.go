package booking

import (
	"github.com/m04kA/PetSitting-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

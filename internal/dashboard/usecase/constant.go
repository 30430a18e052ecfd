package usecase

import "time"

const sweepInterval = time.Minute

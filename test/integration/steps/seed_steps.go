package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/kas-sigmafam/backend/internal/domain/entity"
	"github.com/kas-sigmafam/backend/internal/integration/persistence/model"
)

// registerSeedSteps registers steps that insert rows directly into the test
// database. Seeded entity ids are remembered under the entity's name for
// "{name}" placeholder substitution in later requests.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following residents exist:$`, theFollowingResidentsExist)
	ctx.Step(`^the following categories exist:$`, theFollowingCategoriesExist)
	ctx.Step(`^the following accounts exist:$`, theFollowingAccountsExist)
	ctx.Step(`^the following transactions exist:$`, theFollowingTransactionsExist)
}

// tableRows converts a godog table into column-name keyed maps.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(row.Cells), len(header))
		}
		entry := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			entry[header[i]] = cell.Value
		}
		rows = append(rows, entry)
	}
	return rows, nil
}

func theFollowingResidentsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := strconv.ParseInt(row["default_monthly_amount"], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid default_monthly_amount %q: %w", row["default_monthly_amount"], err)
		}

		resident := entity.NewResident(
			row["name"],
			amount,
			entity.RoomType(row["room_type"]),
			entity.Floor(row["floor"]),
		)
		if err := tc.db.DbConn.Create(model.ResidentFromEntity(resident)).Error; err != nil {
			return fmt.Errorf("failed to seed resident %q: %w", row["name"], err)
		}
		tc.ids[resident.Name] = resident.ID.String()
	}
	return nil
}

func theFollowingCategoriesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		var defaultPerPerson *int64
		if raw := row["default_per_person"]; raw != "" {
			amount, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid default_per_person %q: %w", raw, err)
			}
			defaultPerPerson = &amount
		}

		category := entity.NewCategory(row["name"], entity.CategoryType(row["type"]), defaultPerPerson)
		if err := tc.db.DbConn.Create(model.CategoryFromEntity(category)).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", row["name"], err)
		}
		tc.ids[category.Name] = category.ID.String()
	}
	return nil
}

func theFollowingAccountsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		balance, err := strconv.ParseInt(row["balance"], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid balance %q: %w", row["balance"], err)
		}

		account := entity.NewAccount(
			row["name"],
			entity.AccountType(row["type"]),
			row["provider"],
			nil,
			balance,
			nil,
		)
		if err := tc.db.DbConn.Create(model.AccountFromEntity(account)).Error; err != nil {
			return fmt.Errorf("failed to seed account %q: %w", row["name"], err)
		}
		tc.ids[account.Name] = account.ID.String()
	}
	return nil
}

func theFollowingTransactionsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := strconv.ParseInt(row["amount"], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}

		date, err := time.ParseInLocation("2006-01-02", row["date"], time.UTC)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row["date"], err)
		}

		residentID, err := tc.seededID(row["resident"])
		if err != nil {
			return err
		}
		categoryID, err := tc.seededID(row["category"])
		if err != nil {
			return err
		}

		transaction := entity.NewTransaction(
			entity.TransactionType(row["type"]),
			amount,
			residentID,
			categoryID,
			nil,
			row["description"],
			nil,
			date,
		)
		if err := tc.db.DbConn.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	return nil
}

// seededID resolves a seeded entity name to its uuid, nil for a blank name.
func (tc *TestContext) seededID(name string) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}
	raw, ok := tc.ids[name]
	if !ok {
		return nil, fmt.Errorf("no seeded entity named %q", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid id for %q: %w", name, err)
	}
	return &id, nil
}

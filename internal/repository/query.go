package repository

const (
	selectOrder = `SELECT
		id,
		increment_id,
		store_id,
		status,
		state,
		grand_total,
		base_grand_total,
		discount_coupon_amount,
		base_discount_coupon_amount,
		finance_cost_amount,
		base_finance_cost_amount,
		created_at,
		updated_at
	FROM orders`

	// Store scope values win over default scope ones.
	selectConfigValue = `SELECT value
	FROM core_config_data
	WHERE path = $1
		AND ((scope = $2 AND scope_id = $3) OR scope = 'default')
	ORDER BY CASE WHEN scope = 'default' THEN 1 ELSE 0 END
	LIMIT 1`
)

package cron

import (
	"github.com/jasonlvhit/gocron"
	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/models"
)

type AffiliateTotalsJob struct {
}

func (j *AffiliateTotalsJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:00:00").Do(reconcileAffiliateTotals)
	<-s.Start()
}

type GroupCommission struct {
	AffiliateID     int64
	TotalSales      int64
	TotalCommission decimal.Decimal
}

// reconcileAffiliateTotals recomputes each affiliate's running totals
// from the commission rows. The totals are updated in the same
// transaction as every recorded sale, so this is a safety net against
// drift, not a source of truth.
func reconcileAffiliateTotals() {
	var group_commissions []*GroupCommission

	config.DataBase.
		Model(&models.Commission{}).
		Select("affiliate_id", "COUNT(*) as total_sales", "SUM(commission) as total_commission").
		Group("affiliate_id").
		Find(&group_commissions)

	for _, group_commission := range group_commissions {
		var affiliate *models.Affiliate

		if result := config.DataBase.First(&affiliate, "id = ?", group_commission.AffiliateID); result.Error != nil {
			continue
		}

		if affiliate.TotalSales == group_commission.TotalSales && affiliate.TotalCommission.Equal(group_commission.TotalCommission) {
			continue
		}

		config.Logger.Warnf("affiliate %d totals drifted (sales %d != %d), reconciling", affiliate.ID, affiliate.TotalSales, group_commission.TotalSales)

		config.DataBase.Model(&affiliate).Updates(map[string]interface{}{
			"total_sales":      group_commission.TotalSales,
			"total_commission": group_commission.TotalCommission,
		})
	}
}

package fuelsale

import "errors"

var (
	ErrStandAkhirBelowStandAwal = errors.New("Stand akhir tidak boleh lebih kecil dari stand awal!")
	ErrNegativeStand            = errors.New("stand meter tidak boleh negatif")
	ErrNegativePrice            = errors.New("harga per liter tidak boleh negatif")
	ErrFuelSaleNotFound         = errors.New("fuel sale not found")
)

package dashboard

import (
	"cloudvault/internal/entity"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const gigabyte int64 = 1 << 30

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanBytes formats n with binary multiples, e.g. "1.5 MB" or "75 GB".
func HumanBytes(n int64) string {
	if n < 1024 {
		if n < 0 {
			n = 0
		}
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	formatted := strconv.FormatFloat(value, 'f', 1, 64)
	formatted = strings.TrimSuffix(formatted, ".0")
	return formatted + " " + byteUnits[unit]
}

// Percent returns part/total as a whole percentage clamped to 0..100.
func Percent(part, total int64) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	p := int((part*100 + total/2) / total)
	if p > 100 {
		return 100
	}
	return p
}

// Overview builds the used/total gauge.
func Overview(used, total int64) entity.StorageOverview {
	return entity.StorageOverview{
		UsedBytes:  used,
		TotalBytes: total,
		Used:       HumanBytes(used),
		Total:      HumanBytes(total),
		Percent:    Percent(used, total),
	}
}

var distributionOrder = []string{entity.FileTypeDoc, entity.FileTypeImage, entity.FileTypeVideo, entity.FileTypeOther}

// Distribution turns per-type usage into chart slices. Types with no bytes are
// omitted and the percentages of the rest always sum to 100.
func Distribution(usage []entity.TypeUsage) []entity.DistributionSlice {
	sizes := make(map[string]int64, len(distributionOrder))
	var total int64
	for _, u := range usage {
		if u.SizeBytes <= 0 {
			continue
		}
		fileType := ParseFileFilter(u.FileType)
		if fileType == entity.FileTypeAll {
			fileType = entity.FileTypeOther
		}
		sizes[fileType] += u.SizeBytes
		total += u.SizeBytes
	}
	if total == 0 {
		return []entity.DistributionSlice{}
	}

	type share struct {
		index     int
		remainder int64
	}
	slices := make([]entity.DistributionSlice, 0, len(sizes))
	shares := make([]share, 0, len(sizes))
	assigned := 0
	for _, fileType := range distributionOrder {
		size, ok := sizes[fileType]
		if !ok {
			continue
		}
		percent := int(size * 100 / total)
		assigned += percent
		shares = append(shares, share{index: len(slices), remainder: size * 100 % total})
		slices = append(slices, entity.DistributionSlice{Type: fileType, Label: TypeLabel(fileType), Percent: percent})
	}

	// Hand the leftover points to the largest remainders.
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].remainder > shares[j].remainder })
	for i := 0; assigned < 100; i++ {
		slices[shares[i%len(shares)].index].Percent++
		assigned++
	}
	return slices
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			out = append(out, []rune(strings.ToUpper(string(r)))...)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// Package catalog holds the static herb reference data and the home feed,
// and builds the alphabetical index the herbs screen is rendered from.
package catalog

import "github.com/dmitrijs2005/herbalist/internal/client/models"

var herbs = []models.Herb{
	{ID: "1", Slug: "astragalus", NameZh: "黄芪", NamePinyin: "Huangqi", Family: "Astragalus membranaceus", Property: "Warm", Flavor: []string{"Sweet"}, Meridians: []string{"Lung", "Spleen"}},
	{ID: "2", Slug: "bai-zhu", NameZh: "白术", NamePinyin: "Baizhu", Family: "Atractylodes macrocephala", Property: "Warm", Flavor: []string{"Bitter", "Sweet"}, Meridians: []string{"Spleen", "Stomach"}},
	{ID: "3", Slug: "cang-zhu", NameZh: "苍术", NamePinyin: "Cangzhu", Family: "Atractylodes lancea", Property: "Warm", Flavor: []string{"Acrid", "Bitter"}, Meridians: []string{"Spleen", "Stomach"}},
	{ID: "4", Slug: "dang-gui", NameZh: "当归", NamePinyin: "Danggui", Family: "Angelica sinensis", Property: "Warm", Flavor: []string{"Sweet", "Acrid"}, Meridians: []string{"Liver", "Heart", "Spleen"}},
	{ID: "5", Slug: "e-jiao", NameZh: "阿胶", NamePinyin: "Ejiao", Family: "Colla Corii Asini", Property: "Neutral", Flavor: []string{"Sweet"}, Meridians: []string{"Lung", "Liver", "Kidney"}},
	{ID: "6", Slug: "fu-ling", NameZh: "茯苓", NamePinyin: "Fuling", Family: "Poria cocos", Property: "Neutral", Flavor: []string{"Sweet", "Bland"}, Meridians: []string{"Heart", "Spleen", "Kidney", "Lung"}},
	{ID: "7", Slug: "gan-cao", NameZh: "甘草", NamePinyin: "Gancao", Family: "Glycyrrhiza uralensis", Property: "Neutral", Flavor: []string{"Sweet"}, Meridians: []string{"All 12 channels"}},
	{ID: "8", Slug: "huo-xiang", NameZh: "藿香", NamePinyin: "Huoxiang", Family: "Pogostemon cablin", Property: "Slightly Warm", Flavor: []string{"Acrid"}, Meridians: []string{"Lung", "Spleen", "Stomach"}},
	{ID: "9", Slug: "jin-yin-hua", NameZh: "金银花", NamePinyin: "Jinyinhua", Family: "Lonicera japonica", Property: "Cold", Flavor: []string{"Sweet"}, Meridians: []string{"Lung", "Heart", "Stomach"}},
	{ID: "10", Slug: "ku-shen", NameZh: "苦参", NamePinyin: "Kushen", Family: "Sophora flavescens", Property: "Cold", Flavor: []string{"Bitter"}, Meridians: []string{"Bladder", "Heart", "Liver", "Stomach", "Large Intestine"}},
	{ID: "11", Slug: "long-dan-cao", NameZh: "龙胆草", NamePinyin: "Longdancao", Family: "Gentiana scabra", Property: "Cold", Flavor: []string{"Bitter"}, Meridians: []string{"Liver", "Gallbladder"}},
	{ID: "12", Slug: "ma-huang", NameZh: "麻黄", NamePinyin: "Mahuang", Family: "Ephedra sinica", Property: "Warm", Flavor: []string{"Acrid", "Slightly Bitter"}, Meridians: []string{"Lung", "Bladder"}},
	{ID: "13", Slug: "niu-bang-zi", NameZh: "牛蒡子", NamePinyin: "Niubangzi", Family: "Arctium lappa", Property: "Cold", Flavor: []string{"Acrid", "Bitter"}, Meridians: []string{"Lung", "Stomach"}},
	{ID: "14", Slug: "ou-jie", NameZh: "藕节", NamePinyin: "Oujie", Family: "Nelumbo nucifera", Property: "Neutral", Flavor: []string{"Sweet", "Astringent"}, Meridians: []string{"Lung", "Stomach"}},
	{ID: "15", Slug: "pu-gong-ying", NameZh: "蒲公英", NamePinyin: "Pugongying", Family: "Taraxacum mongolicum", Property: "Cold", Flavor: []string{"Bitter", "Sweet"}, Meridians: []string{"Liver", "Stomach"}},
	{ID: "16", Slug: "qiang-huo", NameZh: "羌活", NamePinyin: "Qianghuo", Family: "Notopterygium incisum", Property: "Warm", Flavor: []string{"Acrid", "Bitter"}, Meridians: []string{"Bladder", "Kidney"}},
	{ID: "17", Slug: "ren-shen", NameZh: "人参", NamePinyin: "Renshen", Family: "Panax ginseng", Property: "Slightly Warm", Flavor: []string{"Sweet", "Slightly Bitter"}, Meridians: []string{"Lung", "Spleen"}},
	{ID: "18", Slug: "sheng-jiang", NameZh: "生姜", NamePinyin: "Shengjiang", Family: "Zingiber officinale", Property: "Warm", Flavor: []string{"Acrid"}, Meridians: []string{"Lung", "Spleen", "Stomach"}},
	{ID: "19", Slug: "tai-zi-shen", NameZh: "太子参", NamePinyin: "Taizishen", Family: "Pseudostellaria heterophylla", Property: "Neutral", Flavor: []string{"Sweet"}, Meridians: []string{"Lung", "Spleen"}},
	{ID: "20", Slug: "wu-wei-zi", NameZh: "五味子", NamePinyin: "Wuweizi", Family: "Schisandra chinensis", Property: "Warm", Flavor: []string{"Sour", "Sweet"}, Meridians: []string{"Lung", "Heart", "Kidney"}},
	{ID: "21", Slug: "xi-xin", NameZh: "细辛", NamePinyin: "Xixin", Family: "Asarum sieboldii", Property: "Warm", Flavor: []string{"Acrid"}, Meridians: []string{"Heart", "Lung", "Kidney"}},
	{ID: "22", Slug: "yin-chen", NameZh: "茵陈", NamePinyin: "Yinchen", Family: "Artemisia capillaris", Property: "Slightly Cold", Flavor: []string{"Bitter"}, Meridians: []string{"Liver", "Gallbladder", "Spleen", "Stomach"}},
	{ID: "23", Slug: "zhi-zi", NameZh: "栀子", NamePinyin: "Zhizi", Family: "Gardenia jasminoides", Property: "Cold", Flavor: []string{"Bitter"}, Meridians: []string{"Heart", "Lung", "Stomach", "Liver", "San Jiao"}},
	// sorts under '#'
	{ID: "24", Slug: "3h-unique", NameZh: "3号草", NamePinyin: "3hao cao", Family: "Sample", Property: "Neutral", Flavor: []string{"Bland"}, Meridians: []string{"Spleen"}},
}

// Herbs returns a copy of the static dataset.
func Herbs() []models.Herb {
	out := make([]models.Herb, len(herbs))
	copy(out, herbs)
	return out
}

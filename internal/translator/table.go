package translator

// sourceTable returns the source code to ISO-3166 alpha-3 mapping. A fresh
// map is built on every call and New takes ownership of it.
//
// Both "1101" and "1152" map to "KOR". "1152" matches no known country in
// the upstream list but has been seen on rows with Seoul addresses.
func sourceTable() map[string]string {
	return map[string]string{
		"1000": "AFG",
		"1001": "ALB",
		"1002": "DZA",
		"1003": "AND",
		"1004": "AGO",
		"1213": "AIA",
		"1214": "ATG",
		"1005": "ARG",
		"1215": "ARM",
		"1216": "ABW",
		"1006": "ASI",
		"1007": "AUS",
		"1008": "AUT",
		"1217": "AZE",
		"1009": "AZR",
		"1010": "BHS",
		"1011": "BHR",
		"1012": "BGD",
		"1013": "BRB",
		"1218": "BLR",
		"1014": "BEL",
		"1015": "BLZ",
		"1016": "BEN",
		"1017": "BMU",
		"1018": "BTN",
		"1019": "BOL",
		"1206": "BIH",
		"1021": "BWA",
		"1022": "BRA",
		"1219": "VGB",
		"1024": "BRN",
		"1025": "BGR",
		"1195": "BFA",
		"1026": "MMR",
		"1027": "BDI",
		"1028": "KHM",
		"1029": "CMR",
		"0001": "CAN",
		"1030": "CNI",
		"1032": "CPV",
		"1034": "CYM",
		"1035": "CAF",
		"1036": "TCD",
		"1037": "CHI",
		"1038": "CHL",
		"1039": "CHN",
		"1040": "COL",
		"1041": "COM",
		"1042": "COG",
		"1222": "COK",
		"1044": "CRI",
		"1223": "HRV",
		"1046": "CYP",
		"1047": "CZE",
		"1048": "DNK",
		"1049": "DJI",
		"1050": "DMA",
		"1051": "DOM",
		"1052": "TLS",
		"1053": "ECU",
		"1054": "EGY",
		"1055": "SLV",
		"1056": "GNQ",
		"1057": "EST",
		"1058": "ETH",
		"1059": "FRO",
		"1061": "FJI",
		"1062": "FIN",
		"1063": "FRA",
		"1064": "GUF",
		"1065": "PYF",
		"1066": "GAB",
		"1067": "GMB",
		"1225": "GEO",
		"1068": "DEU",
		"1070": "GHA",
		"1071": "GIB",
		"1073": "GRC",
		"1074": "GRL",
		"1075": "GRD",
		"1076": "GLP",
		"1078": "GTM",
		"1079": "GIN",
		"1080": "GNB",
		"1081": "GUY",
		"1082": "HTI",
		"1083": "HND",
		"1084": "HKG",
		"1085": "HUN",
		"1086": "ISL",
		"1087": "IND",
		"1088": "IDN",
		"1091": "IRL",
		"1251": "IMN",
		"1092": "ISR",
		"1093": "ITA",
		"1094": "CIV",
		"1095": "JAM",
		"1096": "JPN",
		"1097": "JOR",
		"1226": "KAZ",
		"1099": "KEN",
		"1100": "KIR",
		"1101": "KOR",
		"1152": "KOR",
		"1102": "KWT",
		"1227": "KGZ",
		"1103": "LAO",
		"1104": "LVA",
		"1105": "LBN",
		"1107": "LSO",
		"1108": "LBR",
		"1109": "LBY",
		"1110": "LIE",
		"1111": "LTU",
		"1112": "LUX",
		"1113": "MAC",
		"1228": "MKD",
		"1114": "MDG",
		"1115": "MAD",
		"1116": "MWI",
		"1117": "MYS",
		"1118": "MDV",
		"1119": "MLI",
		"1120": "MLT",
		"1121": "MTQ",
		"1123": "MUS",
		"1122": "MRT",
		"1124": "MEX",
		"1231": "MDA",
		"1125": "MCO",
		"1126": "MNG",
		"1232": "MNE",
		"1233": "MSR",
		"1127": "MAR",
		"1128": "MOZ",
		"1130": "NAU",
		"1131": "NPL",
		"1132": "NLD",
		"1133": "ANT",
		"1134": "NCL",
		"1135": "NZL",
		"1136": "NIC",
		"1137": "NER",
		"1138": "NGA",
		"1139": "NID",
		"1140": "NOR",
		"1141": "OMN",
		"1142": "PAK",
		"1235": "PLW",
		"1143": "PAN",
		"1144": "PNG",
		"1145": "PRY",
		"1146": "PER",
		"1147": "PHL",
		"1148": "PIT",
		"1149": "POL",
		"1150": "PRT",
		"1151": "QAT",
		"1153": "REU",
		"1155": "ROU",
		"1193": "RUS",
		"1156": "RWA",
		"1129": "NAM",
		"1238": "SAB",
		"1157": "SHN",
		"1158": "LCA",
		"1241": "SMR",
		"1161": "STP",
		"1162": "SAU",
		"1163": "SCT",
		"1164": "SEN",
		"1243": "SRB",
		"1165": "SYC",
		"1166": "SLE",
		"1167": "SGP",
		"1245": "SVK",
		"1210": "SVN",
		"1168": "SLB",
		"1171": "ZAF",
		"1172": "ESP",
		"1173": "LKA",
		"1174": "VCT",
		"1240": "KNA",
		"1175": "SDN",
		"1176": "SUR",
		"1177": "SWZ",
		"1178": "SWE",
		"1179": "CHE",
		"1181": "TWN",
		"1246": "TJK",
		"1182": "TZA",
		"1183": "THA",
		"1184": "TGO",
		"1185": "TON",
		"1186": "TTO",
		"1187": "TDC",
		"1188": "TUN",
		"1189": "TUR",
		"1247": "TKM",
		"1190": "TCA",
		"1191": "TUV",
		"1192": "UGA",
		"1248": "UKR",
		"1194": "ARE",
		"1072": "GBR",
		"1196": "URY",
		"0000": "USA",
		"1250": "UZB",
		"1197": "VUT",
		"1198": "VTC",
		"1199": "VEN",
		"1200": "VNM",
		"1202": "WLS",
		"1203": "WSM",
		"1204": "YEM",
		"1207": "ZAI",
		"1208": "ZMB",
		"1209": "ZWE",
	}
}

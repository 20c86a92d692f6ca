// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

// Expected results of the reference scenarios, flattened with axis 0 varying fastest.

// conv1DWant holds the results of ConvTranspose1D for conv1DParams, with a (3, 2) activation and (2, 3, 2) kernel.
var conv1DWant = [][]float32{
	{
		18, 45, 59, 37, 24, 61, 83, 51, 30, 77, 107, 65,
	},
	{
		18, 21, 24, 29, 30, 37, 24, 27, 34, 39, 44, 51,
		30, 33, 44, 49, 58, 65,
	},
	{
		18, 21, 0, 24, 29, 0, 30, 37, 24, 27, 0, 34,
		39, 0, 44, 51, 30, 33, 0, 44, 49, 0, 58, 65,
	},
	{
		18, 24, 51, 29, 37, 24, 34, 71, 39, 51, 30, 44,
		91, 49, 65,
	},
	{
		18, 24, 30, 21, 29, 37, 24, 34, 44, 27, 39, 51,
		30, 44, 58, 33, 49, 65,
	},
	{
		45, 59, 61, 83, 77, 107,
	},
	{
		0, 0, 0,
	},
}

// conv1DBatchedWant holds the results of ConvTranspose1D for conv1DParams, with a (3, 5, 2) activation and (4, 7, 5) kernel.
var conv1DBatchedWant = [][]float32{
	{
		2520, 5350, 8495, 8600, 6065, 3200, 2640, 5610, 8915, 9020, 6365, 3360,
		2760, 5870, 9335, 9440, 6665, 3520, 2880, 6130, 9755, 9860, 6965, 3680,
		3000, 6390, 10175, 10280, 7265, 3840, 3120, 6650, 10595, 10700, 7565, 4000,
		3240, 6910, 11015, 11120, 7865, 4160, 6720, 13825, 21320, 21650, 14840, 7625,
		7140, 14685, 22640, 22970, 15740, 8085, 7560, 15545, 23960, 24290, 16640, 8545,
		7980, 16405, 25280, 25610, 17540, 9005, 8400, 17265, 26600, 26930, 18440, 9465,
		8820, 18125, 27920, 28250, 19340, 9925, 9240, 18985, 29240, 29570, 20240, 10385,
	},
	{
		2520, 2550, 5380, 5445, 5950, 6025, 3160, 3200, 2640, 2670, 5640, 5705,
		6250, 6325, 3320, 3360, 2760, 2790, 5900, 5965, 6550, 6625, 3480, 3520,
		2880, 2910, 6160, 6225, 6850, 6925, 3640, 3680, 3000, 3030, 6420, 6485,
		7150, 7225, 3800, 3840, 3120, 3150, 6680, 6745, 7450, 7525, 3960, 4000,
		3240, 3270, 6940, 7005, 7750, 7825, 4120, 4160, 6720, 6825, 13930, 14145,
		14500, 14725, 7510, 7625, 7140, 7245, 14790, 15005, 15400, 15625, 7970, 8085,
		7560, 7665, 15650, 15865, 16300, 16525, 8430, 8545, 7980, 8085, 16510, 16725,
		17200, 17425, 8890, 9005, 8400, 8505, 17370, 17585, 18100, 18325, 9350, 9465,
		8820, 8925, 18230, 18445, 19000, 19225, 9810, 9925, 9240, 9345, 19090, 19305,
		19900, 20125, 10270, 10385,
	},
	{
		2520, 2550, 2580, 5410, 2835, 2870, 5985, 3120, 3160, 3200, 2640, 2670,
		2700, 5670, 2975, 3010, 6285, 3280, 3320, 3360, 2760, 2790, 2820, 5930,
		3115, 3150, 6585, 3440, 3480, 3520, 2880, 2910, 2940, 6190, 3255, 3290,
		6885, 3600, 3640, 3680, 3000, 3030, 3060, 6450, 3395, 3430, 7185, 3760,
		3800, 3840, 3120, 3150, 3180, 6710, 3535, 3570, 7485, 3920, 3960, 4000,
		3240, 3270, 3300, 6970, 3675, 3710, 7785, 4080, 4120, 4160, 6720, 6825,
		6930, 14035, 7110, 7220, 14610, 7395, 7510, 7625, 7140, 7245, 7350, 14895,
		7550, 7660, 15510, 7855, 7970, 8085, 7560, 7665, 7770, 15755, 7990, 8100,
		16410, 8315, 8430, 8545, 7980, 8085, 8190, 16615, 8430, 8540, 17310, 8775,
		8890, 9005, 8400, 8505, 8610, 17475, 8870, 8980, 18210, 9235, 9350, 9465,
		8820, 8925, 9030, 18335, 9310, 9420, 19110, 9695, 9810, 9925, 9240, 9345,
		9450, 19195, 9750, 9860, 20010, 10155, 10270, 10385,
	},
	{
		2520, 2800, 5630, 2835, 5700, 2870, 5770, 2905, 3200, 2640, 2940, 5910,
		2975, 5980, 3010, 6050, 3045, 3360, 2760, 3080, 6190, 3115, 6260, 3150,
		6330, 3185, 3520, 2880, 3220, 6470, 3255, 6540, 3290, 6610, 3325, 3680,
		3000, 3360, 6750, 3395, 6820, 3430, 6890, 3465, 3840, 3120, 3500, 7030,
		3535, 7100, 3570, 7170, 3605, 4000, 3240, 3640, 7310, 3675, 7380, 3710,
		7450, 3745, 4160, 6720, 7000, 14105, 7110, 14325, 7220, 14545, 7330, 7625,
		7140, 7440, 14985, 7550, 15205, 7660, 15425, 7770, 8085, 7560, 7880, 15865,
		7990, 16085, 8100, 16305, 8210, 8545, 7980, 8320, 16745, 8430, 16965, 8540,
		17185, 8650, 9005, 8400, 8760, 17625, 8870, 17845, 8980, 18065, 9090, 9465,
		8820, 9200, 18505, 9310, 18725, 9420, 18945, 9530, 9925, 9240, 9640, 19385,
		9750, 19605, 9860, 19825, 9970, 10385,
	},
	{
		2520, 2800, 3080, 2550, 2835, 3120, 2580, 2870, 3160, 2610, 2905, 3200,
		2640, 2940, 3240, 2670, 2975, 3280, 2700, 3010, 3320, 2730, 3045, 3360,
		2760, 3080, 3400, 2790, 3115, 3440, 2820, 3150, 3480, 2850, 3185, 3520,
		2880, 3220, 3560, 2910, 3255, 3600, 2940, 3290, 3640, 2970, 3325, 3680,
		3000, 3360, 3720, 3030, 3395, 3760, 3060, 3430, 3800, 3090, 3465, 3840,
		3120, 3500, 3880, 3150, 3535, 3920, 3180, 3570, 3960, 3210, 3605, 4000,
		3240, 3640, 4040, 3270, 3675, 4080, 3300, 3710, 4120, 3330, 3745, 4160,
		6720, 7000, 7280, 6825, 7110, 7395, 6930, 7220, 7510, 7035, 7330, 7625,
		7140, 7440, 7740, 7245, 7550, 7855, 7350, 7660, 7970, 7455, 7770, 8085,
		7560, 7880, 8200, 7665, 7990, 8315, 7770, 8100, 8430, 7875, 8210, 8545,
		7980, 8320, 8660, 8085, 8430, 8775, 8190, 8540, 8890, 8295, 8650, 9005,
		8400, 8760, 9120, 8505, 8870, 9235, 8610, 8980, 9350, 8715, 9090, 9465,
		8820, 9200, 9580, 8925, 9310, 9695, 9030, 9420, 9810, 9135, 9530, 9925,
		9240, 9640, 10040, 9345, 9750, 10155, 9450, 9860, 10270, 9555, 9970, 10385,
	},
	{
		5350, 8495, 8600, 6065, 5610, 8915, 9020, 6365, 5870, 9335, 9440, 6665,
		6130, 9755, 9860, 6965, 6390, 10175, 10280, 7265, 6650, 10595, 10700, 7565,
		6910, 11015, 11120, 7865, 13825, 21320, 21650, 14840, 14685, 22640, 22970, 15740,
		15545, 23960, 24290, 16640, 16405, 25280, 25610, 17540, 17265, 26600, 26930, 18440,
		18125, 27920, 28250, 19340, 18985, 29240, 29570, 20240,
	},
	{
		0, 8495, 0, 8600, 0, 0, 8915, 0, 9020, 0, 0, 9335,
		0, 9440, 0, 0, 9755, 0, 9860, 0, 0, 10175, 0, 10280,
		0, 0, 10595, 0, 10700, 0, 0, 11015, 0, 11120, 0, 0,
		21320, 0, 21650, 0, 0, 22640, 0, 22970, 0, 0, 23960, 0,
		24290, 0, 0, 25280, 0, 25610, 0, 0, 26600, 0, 26930, 0,
		0, 27920, 0, 28250, 0, 0, 29240, 0, 29570, 0,
	},
}

// conv2DWant holds the results of ConvTranspose2DP0 with strides 1, 2 and 3.
var conv2DWant = [][]float32{
	{
		72, 162, 188, 106, 192, 430, 490, 274, 132, 292, 326, 180,
		96, 218, 260, 146, 264, 590, 682, 378, 180, 396, 446, 244,
		120, 274, 332, 186, 336, 750, 874, 482, 228, 500, 566, 308,
	},
	{
		72, 78, 84, 92, 96, 106, 84, 90, 100, 108, 116, 126,
		108, 120, 120, 134, 132, 148, 132, 144, 148, 162, 164, 180,
		96, 102, 116, 124, 136, 146, 108, 114, 132, 140, 156, 166,
		156, 168, 176, 190, 196, 212, 180, 192, 204, 218, 228, 244,
		120, 126, 148, 156, 176, 186, 132, 138, 164, 172, 196, 206,
		204, 216, 232, 246, 260, 276, 228, 240, 260, 274, 292, 308,
	},
	{
		72, 78, 0, 84, 92, 0, 96, 106, 84, 90, 0, 100,
		108, 0, 116, 126, 0, 0, 0, 0, 0, 0, 0, 0,
		108, 120, 0, 120, 134, 0, 132, 148, 132, 144, 0, 148,
		162, 0, 164, 180, 96, 102, 0, 116, 124, 0, 136, 146,
		108, 114, 0, 132, 140, 0, 156, 166, 0, 0, 0, 0,
		0, 0, 0, 0, 156, 168, 0, 176, 190, 0, 196, 212,
		180, 192, 0, 204, 218, 0, 228, 244, 120, 126, 0, 148,
		156, 0, 176, 186, 132, 138, 0, 164, 172, 0, 196, 206,
		0, 0, 0, 0, 0, 0, 0, 0, 204, 216, 0, 232,
		246, 0, 260, 276, 228, 240, 0, 260, 274, 0, 292, 308,
	},
}

// foldWant holds the results of Fold for foldParams.
var foldWant = [][]float32{
	{
		0, 8, 24, 48, 80, 85, 90, 88, 78, 60, 34, 35,
		78, 129, 188, 255, 260, 265, 228, 183, 130, 69, 70, 148,
		234, 328, 430, 435, 440, 368, 288, 200, 104, 105, 218, 339,
		468, 605, 610, 615, 508, 393, 270, 139, 140, 288, 444, 608,
		780, 785, 790, 648, 498, 340, 174, 175, 358, 549, 748, 955,
		960, 965, 788, 603, 410, 209,
	},
	{
		0, 7, 15, 29, 45, 31, 48, 33, 51, 35, 54, 37,
		57, 39, 53, 27, 34, 35, 42, 85, 99, 150, 101, 153,
		103, 156, 105, 159, 107, 162, 109, 123, 62, 69, 70, 77,
		155, 169, 255, 171, 258, 173, 261, 175, 264, 177, 267, 179,
		193, 97, 104, 105, 112, 225, 239, 360, 241, 363, 243, 366,
		245, 369, 247, 372, 249, 263, 132, 139, 140, 147, 295, 309,
		465, 311, 468, 313, 471, 315, 474, 317, 477, 319, 333, 167,
		174, 175, 182, 365, 379, 570, 381, 573, 383, 576, 385, 579,
		387, 582, 389, 403, 202, 209,
	},
	{
		8, 24, 48, 80, 85, 90, 88, 78, 60, 78, 129, 188,
		255, 260, 265, 228, 183, 130, 148, 234, 328, 430, 435, 440,
		368, 288, 200, 218, 339, 468, 605, 610, 615, 508, 393, 270,
		288, 444, 608, 780, 785, 790, 648, 498, 340, 358, 549, 748,
		955, 960, 965, 788, 603, 410,
	},
	{
		0, 1, 9, 11, 27, 30, 54, 51, 82, 72, 75, 57,
		59, 33, 34, 35, 36, 79, 81, 132, 135, 194, 156, 222,
		177, 180, 127, 129, 68, 69, 70, 71, 149, 151, 237, 240,
		334, 261, 362, 282, 285, 197, 199, 103, 104, 105, 106, 219,
		221, 342, 345, 474, 366, 502, 387, 390, 267, 269, 138, 139,
		140, 141, 289, 291, 447, 450, 614, 471, 642, 492, 495, 337,
		339, 173, 174, 175, 176, 359, 361, 552, 555, 754, 576, 782,
		597, 600, 407, 409, 208, 209,
	},
	{
		0, 8, 0, 24, 0, 48, 0, 80, 0, 85, 0, 90,
		0, 88, 0, 78, 0, 60, 0, 0, 78, 0, 129, 0,
		188, 0, 255, 0, 260, 0, 265, 0, 228, 0, 183, 0,
		130, 0, 0, 148, 0, 234, 0, 328, 0, 430, 0, 435,
		0, 440, 0, 368, 0, 288, 0, 200, 0, 0, 218, 0,
		339, 0, 468, 0, 605, 0, 610, 0, 615, 0, 508, 0,
		393, 0, 270, 0, 0, 288, 0, 444, 0, 608, 0, 780,
		0, 785, 0, 790, 0, 648, 0, 498, 0, 340, 0, 0,
		358, 0, 549, 0, 748, 0, 955, 0, 960, 0, 965, 0,
		788, 0, 603, 0, 410, 0,
	},
	{
		0, 13, 0, 1, 26, 0, 14, 39, 2, 27, 52, 15,
		40, 68, 28, 53, 94, 41, 70, 120, 54, 96, 146, 72,
		122, 172, 98, 148, 204, 124, 174, 100, 150, 207, 126, 176,
		102, 152, 210, 128, 178, 104, 154, 213, 130, 180, 106, 156,
		216, 132, 182, 108, 158, 219, 134, 184, 110, 160, 222, 136,
		186, 112, 162, 212, 138, 188, 88, 164, 214, 101, 190, 89,
		114, 216, 102, 127, 90, 115, 140, 103, 128, 0, 116, 141,
		0, 129, 0, 0, 156, 0, 144, 169, 0, 157, 182, 145,
		170, 195, 158, 183, 354, 171, 196, 380, 184, 356, 406, 197,
		382, 432, 358, 408, 458, 384, 434, 633, 410, 460, 386, 436,
		636, 412, 462, 388, 438, 639, 414, 464, 390, 440, 642, 416,
		466, 392, 442, 645, 418, 468, 394, 444, 648, 420, 470, 396,
		446, 651, 422, 472, 398, 448, 498, 424, 474, 231, 450, 500,
		244, 476, 232, 257, 502, 245, 270, 233, 258, 283, 246, 271,
		0, 259, 284, 0, 272, 0, 0, 299, 0, 287, 312, 0,
		300, 325, 288, 313, 338, 301, 326, 640, 314, 339, 666, 327,
		642, 692, 340, 668, 718, 644, 694, 744, 670, 720, 1062, 696,
		746, 672, 722, 1065, 698, 748, 674, 724, 1068, 700, 750, 676,
		726, 1071, 702, 752, 678, 728, 1074, 704, 754, 680, 730, 1077,
		706, 756, 682, 732, 1080, 708, 758, 684, 734, 784, 710, 760,
		374, 736, 786, 387, 762, 375, 400, 788, 388, 413, 376, 401,
		426, 389, 414, 0, 402, 427, 0, 415, 0, 0, 442, 0,
		430, 455, 0, 443, 468, 431, 456, 481, 444, 469, 926, 457,
		482, 952, 470, 928, 978, 483, 954, 1004, 930, 980, 1030, 956,
		1006, 1491, 982, 1032, 958, 1008, 1494, 984, 1034, 960, 1010, 1497,
		986, 1036, 962, 1012, 1500, 988, 1038, 964, 1014, 1503, 990, 1040,
		966, 1016, 1506, 992, 1042, 968, 1018, 1509, 994, 1044, 970, 1020,
		1070, 996, 1046, 517, 1022, 1072, 530, 1048, 518, 543, 1074, 531,
		556, 519, 544, 569, 532, 557, 0, 545, 570, 0, 558, 0,
		0, 585, 0, 573, 598, 0, 586, 611, 574, 599, 624, 587,
		612, 1212, 600, 625, 1238, 613, 1214, 1264, 626, 1240, 1290, 1216,
		1266, 1316, 1242, 1292, 1920, 1268, 1318, 1244, 1294, 1923, 1270, 1320,
		1246, 1296, 1926, 1272, 1322, 1248, 1298, 1929, 1274, 1324, 1250, 1300,
		1932, 1276, 1326, 1252, 1302, 1935, 1278, 1328, 1254, 1304, 1938, 1280,
		1330, 1256, 1306, 1356, 1282, 1332, 660, 1308, 1358, 673, 1334, 661,
		686, 1360, 674, 699, 662, 687, 712, 675, 700, 0, 688, 713,
		0, 701, 0, 0, 728, 0, 716, 741, 0, 729, 754, 717,
		742, 767, 730, 755, 1498, 743, 768, 1524, 756, 1500, 1550, 769,
		1526, 1576, 1502, 1552, 1602, 1528, 1578, 2349, 1554, 1604, 1530, 1580,
		2352, 1556, 1606, 1532, 1582, 2355, 1558, 1608, 1534, 1584, 2358, 1560,
		1610, 1536, 1586, 2361, 1562, 1612, 1538, 1588, 2364, 1564, 1614, 1540,
		1590, 2367, 1566, 1616, 1542, 1592, 1642, 1568, 1618, 803, 1594, 1644,
		816, 1620, 804, 829, 1646, 817, 842, 805, 830, 855, 818, 843,
		0, 831, 856, 0, 844, 0, 0, 871, 0, 859, 884, 0,
		872, 897, 860, 885, 910, 873, 898, 1784, 886, 911, 1810, 899,
		1786, 1836, 912, 1812, 1862, 1788, 1838, 1888, 1814, 1864, 2778, 1840,
		1890, 1816, 1866, 2781, 1842, 1892, 1818, 1868, 2784, 1844, 1894, 1820,
		1870, 2787, 1846, 1896, 1822, 1872, 2790, 1848, 1898, 1824, 1874, 2793,
		1850, 1900, 1826, 1876, 2796, 1852, 1902, 1828, 1878, 1928, 1854, 1904,
		946, 1880, 1930, 959, 1906, 947, 972, 1932, 960, 985, 948, 973,
		998, 961, 986, 0, 974, 999, 0, 987, 0, 0, 1014, 0,
		1002, 1027, 0, 1015, 1040, 1003, 1028, 1053, 1016, 1041, 2070, 1029,
		1054, 2096, 1042, 2072, 2122, 1055, 2098, 2148, 2074, 2124, 2174, 2100,
		2150, 3207, 2126, 2176, 2102, 2152, 3210, 2128, 2178, 2104, 2154, 3213,
		2130, 2180, 2106, 2156, 3216, 2132, 2182, 2108, 2158, 3219, 2134, 2184,
		2110, 2160, 3222, 2136, 2186, 2112, 2162, 3225, 2138, 2188, 2114, 2164,
		2214, 2140, 2190, 1089, 2166, 2216, 1102, 2192, 1090, 1115, 2218, 1103,
		1128, 1091, 1116, 1141, 1104, 1129, 0, 1117, 1142, 0, 1130, 0,
		0, 1157, 0, 1145, 1170, 0, 1158, 1183, 1146, 1171, 1196, 1159,
		1184, 2356, 1172, 1197, 2382, 1185, 2358, 2408, 1198, 2384, 2434, 2360,
		2410, 2460, 2386, 2436, 3636, 2412, 2462, 2388, 2438, 3639, 2414, 2464,
		2390, 2440, 3642, 2416, 2466, 2392, 2442, 3645, 2418, 2468, 2394, 2444,
		3648, 2420, 2470, 2396, 2446, 3651, 2422, 2472, 2398, 2448, 3654, 2424,
		2474, 2400, 2450, 2500, 2426, 2476, 1232, 2452, 2502, 1245, 2478, 1233,
		1258, 2504, 1246, 1271, 1234, 1259, 1284, 1247, 1272, 0, 1260, 1285,
		0, 1273, 0, 0, 1300, 0, 1288, 1313, 0, 1301, 1326, 1289,
		1314, 1339, 1302, 1327, 2642, 1315, 1340, 2668, 1328, 2644, 2694, 1341,
		2670, 2720, 2646, 2696, 2746, 2672, 2722, 4065, 2698, 2748, 2674, 2724,
		4068, 2700, 2750, 2676, 2726, 4071, 2702, 2752, 2678, 2728, 4074, 2704,
		2754, 2680, 2730, 4077, 2706, 2756, 2682, 2732, 4080, 2708, 2758, 2684,
		2734, 4083, 2710, 2760, 2686, 2736, 2786, 2712, 2762, 1375, 2738, 2788,
		1388, 2764, 1376, 1401, 2790, 1389, 1414, 1377, 1402, 1427, 1390, 1415,
		0, 1403, 1428, 0, 1416, 0,
	},
}

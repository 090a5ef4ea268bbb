package fft

// sincosLookup holds interleaved sin,cos pairs in Q31 covering the first
// quarter period in 1024 steps plus the closing pi/2 pair. Butterfly passes
// walk it forward for [0, pi/4) and backward, with sin and cos swapped, for
// [pi/4, pi/2).
var sincosLookup = [1026]int32{
	0, 2147483647, 3294197, 2147481121,
	6588387, 2147473542, 9882561, 2147460908,
	13176712, 2147443222, 16470832, 2147420483,
	19764913, 2147392690, 23058947, 2147359845,
	26352928, 2147321946, 29646846, 2147278995,
	32940695, 2147230991, 36234466, 2147177934,
	39528151, 2147119825, 42821744, 2147056664,
	46115236, 2146988450, 49408620, 2146915184,
	52701887, 2146836866, 55995030, 2146753497,
	59288042, 2146665076, 62580914, 2146571603,
	65873638, 2146473080, 69166208, 2146369505,
	72458615, 2146260881, 75750851, 2146147205,
	79042909, 2146028480, 82334782, 2145904705,
	85626460, 2145775880, 88917937, 2145642006,
	92209205, 2145503083, 95500255, 2145359112,
	98791081, 2145210092, 102081675, 2145056025,
	105372028, 2144896910, 108662134, 2144732748,
	111951983, 2144563539, 115241570, 2144389283,
	118530885, 2144209982, 121819921, 2144025635,
	125108670, 2143836244, 128397125, 2143641807,
	131685278, 2143442326, 134973122, 2143237802,
	138260647, 2143028234, 141547847, 2142813624,
	144834714, 2142593971, 148121241, 2142369276,
	151407418, 2142139541, 154693240, 2141904764,
	157978697, 2141664948, 161263783, 2141420092,
	164548489, 2141170197, 167832808, 2140915264,
	171116733, 2140655293, 174400254, 2140390284,
	177683365, 2140120240, 180966058, 2139845159,
	184248325, 2139565043, 187530159, 2139279892,
	190811551, 2138989708, 194092495, 2138694490,
	197372981, 2138394240, 200653003, 2138088958,
	203932553, 2137778644, 207211624, 2137463301,
	210490206, 2137142927, 213768293, 2136817525,
	217045878, 2136487095, 220322951, 2136151637,
	223599506, 2135811153, 226875535, 2135465642,
	230151030, 2135115107, 233425984, 2134759548,
	236700388, 2134398966, 239974235, 2134033361,
	243247518, 2133662734, 246520228, 2133287087,
	249792358, 2132906420, 253063900, 2132520734,
	256334847, 2132130030, 259605191, 2131734309,
	262874923, 2131333572, 266144038, 2130927819,
	269412525, 2130517052, 272680379, 2130101272,
	275947592, 2129680480, 279214155, 2129254676,
	282480061, 2128823862, 285745302, 2128388038,
	289009871, 2127947206, 292273760, 2127501367,
	295536961, 2127050522, 298799466, 2126594672,
	302061269, 2126133817, 305322361, 2125667960,
	308582734, 2125197100, 311842381, 2124721240,
	315101295, 2124240380, 318359466, 2123754522,
	321616889, 2123263666, 324873555, 2122767814,
	328129457, 2122266967, 331384586, 2121761126,
	334638936, 2121250292, 337892498, 2120734467,
	341145265, 2120213651, 344397230, 2119687847,
	347648383, 2119157054, 350898719, 2118621275,
	354148230, 2118080511, 357396906, 2117534762,
	360644742, 2116984031, 363891730, 2116428319,
	367137861, 2115867626, 370383128, 2115301954,
	373627523, 2114731305, 376871039, 2114155680,
	380113669, 2113575080, 383355404, 2112989506,
	386596237, 2112398960, 389836160, 2111803444,
	393075166, 2111202959, 396313247, 2110597505,
	399550396, 2109987085, 402786604, 2109371700,
	406021865, 2108751352, 409256170, 2108126041,
	412489512, 2107495770, 415721883, 2106860540,
	418953276, 2106220352, 422183684, 2105575208,
	425413098, 2104925109, 428641511, 2104270057,
	431868915, 2103610054, 435095303, 2102945101,
	438320667, 2102275199, 441545000, 2101600350,
	444768294, 2100920556, 447990541, 2100235819,
	451211734, 2099546139, 454431865, 2098851519,
	457650927, 2098151960, 460868912, 2097447464,
	464085813, 2096738032, 467301622, 2096023667,
	470516330, 2095304370, 473729932, 2094580142,
	476942419, 2093850985, 480153784, 2093116901,
	483364019, 2092377892, 486573117, 2091633960,
	489781069, 2090885105, 492987869, 2090131331,
	496193509, 2089372638, 499397982, 2088609029,
	502601279, 2087840505, 505803394, 2087067068,
	509004318, 2086288720, 512204045, 2085505463,
	515402566, 2084717298, 518599875, 2083924228,
	521795963, 2083126254, 524990824, 2082323379,
	528184449, 2081515603, 531376831, 2080702930,
	534567963, 2079885360, 537757837, 2079062896,
	540946445, 2078235540, 544133781, 2077403294,
	547319836, 2076566160, 550504604, 2075724139,
	553688076, 2074877233, 556870245, 2074025446,
	560051104, 2073168777, 563230645, 2072307231,
	566408860, 2071440808, 569585743, 2070569511,
	572761285, 2069693342, 575935480, 2068812302,
	579108320, 2067926394, 582279796, 2067035621,
	585449903, 2066139983, 588618632, 2065239484,
	591785976, 2064334124, 594951927, 2063423908,
	598116479, 2062508835, 601279623, 2061588910,
	604441352, 2060664133, 607601658, 2059734508,
	610760536, 2058800036, 613917975, 2057860719,
	617073971, 2056916560, 620228514, 2055967560,
	623381598, 2055013723, 626533215, 2054055050,
	629683357, 2053091544, 632832018, 2052123207,
	635979190, 2051150040, 639124865, 2050172048,
	642269036, 2049189231, 645411696, 2048201592,
	648552838, 2047209133, 651692453, 2046211857,
	654830535, 2045209767, 657967075, 2044202863,
	661102068, 2043191150, 664235505, 2042174628,
	667367379, 2041153301, 670497682, 2040127172,
	673626408, 2039096241, 676753549, 2038060512,
	679879097, 2037019988, 683003045, 2035974670,
	686125387, 2034924562, 689246113, 2033869665,
	692365218, 2032809982, 695482694, 2031745516,
	698598533, 2030676269, 701712728, 2029602243,
	704825272, 2028523442, 707936158, 2027439867,
	711045377, 2026351522, 714152924, 2025258408,
	717258790, 2024160529, 720362968, 2023057887,
	723465451, 2021950484, 726566232, 2020838323,
	729665303, 2019721407, 732762657, 2018599739,
	735858287, 2017473321, 738952186, 2016342155,
	742044345, 2015206245, 745134758, 2014065592,
	748223418, 2012920201, 751310318, 2011770073,
	754395449, 2010615210, 757478806, 2009455617,
	760560380, 2008291295, 763640164, 2007122248,
	766718151, 2005948478, 769794334, 2004769987,
	772868706, 2003586779, 775941259, 2002398857,
	779011986, 2001206222, 782080880, 2000008879,
	785147934, 1998806829, 788213141, 1997600076,
	791276492, 1996388622, 794337982, 1995172471,
	797397602, 1993951625, 800455346, 1992726087,
	803511207, 1991495860, 806565177, 1990260946,
	809617249, 1989021350, 812667415, 1987777073,
	815715670, 1986528118, 818762005, 1985274489,
	821806413, 1984016189, 824848888, 1982753220,
	827889422, 1981485585, 830928007, 1980213288,
	833964638, 1978936331, 836999305, 1977654717,
	840032004, 1976368450, 843062726, 1975077532,
	846091463, 1973781967, 849118210, 1972481757,
	852142959, 1971176906, 855165703, 1969867417,
	858186435, 1968553292, 861205147, 1967234535,
	864221832, 1965911148, 867236484, 1964583136,
	870249095, 1963250501, 873259659, 1961913246,
	876268167, 1960571375, 879274614, 1959224890,
	882278992, 1957873796, 885281293, 1956518093,
	888281512, 1955157788, 891279640, 1953792881,
	894275671, 1952423377, 897269597, 1951049279,
	900261413, 1949670589, 903251110, 1948287312,
	906238681, 1946899451, 909224120, 1945507008,
	912207419, 1944109987, 915188572, 1942708392,
	918167572, 1941302225, 921144411, 1939891490,
	924119082, 1938476190, 927091579, 1937056329,
	930061894, 1935631910, 933030021, 1934202936,
	935995952, 1932769411, 938959681, 1931331338,
	941921200, 1929888720, 944880503, 1928441561,
	947837582, 1926989864, 950792431, 1925533633,
	953745043, 1924072871, 956695411, 1922607581,
	959643527, 1921137767, 962589385, 1919663432,
	965532978, 1918184581, 968474300, 1916701216,
	971413342, 1915213340, 974350098, 1913720958,
	977284562, 1912224073, 980216726, 1910722688,
	983146583, 1909216806, 986074127, 1907706433,
	988999351, 1906191570, 991922248, 1904672222,
	994842810, 1903148392, 997761031, 1901620084,
	1000676905, 1900087301, 1003590424, 1898550047,
	1006501581, 1897008325, 1009410370, 1895462140,
	1012316784, 1893911494, 1015220816, 1892356392,
	1018122458, 1890796837, 1021021705, 1889232832,
	1023918550, 1887664383, 1026812985, 1886091491,
	1029705004, 1884514161, 1032594600, 1882932397,
	1035481766, 1881346202, 1038366495, 1879755580,
	1041248781, 1878160535, 1044128617, 1876561070,
	1047005996, 1874957189, 1049880912, 1873348897,
	1052753357, 1871736196, 1055623324, 1870119091,
	1058490808, 1868497586, 1061355801, 1866871683,
	1064218296, 1865241388, 1067078288, 1863606704,
	1069935768, 1861967634, 1072790730, 1860324183,
	1075643169, 1858676355, 1078493076, 1857024153,
	1081340445, 1855367581, 1084185270, 1853706643,
	1087027544, 1852041343, 1089867259, 1850371686,
	1092704411, 1848697674, 1095538991, 1847019312,
	1098370993, 1845336604, 1101200410, 1843649553,
	1104027237, 1841958164, 1106851465, 1840262441,
	1109673089, 1838562388, 1112492101, 1836858008,
	1115308496, 1835149306, 1118122267, 1833436286,
	1120933406, 1831718951, 1123741908, 1829997307,
	1126547765, 1828271356, 1129350972, 1826541103,
	1132151521, 1824806552, 1134949406, 1823067707,
	1137744621, 1821324572, 1140537158, 1819577151,
	1143327011, 1817825449, 1146114174, 1816069469,
	1148898640, 1814309216, 1151680403, 1812544694,
	1154459456, 1810775906, 1157235792, 1809002858,
	1160009405, 1807225553, 1162780288, 1805443995,
	1165548435, 1803658189, 1168313840, 1801868139,
	1171076495, 1800073849, 1173836395, 1798275323,
	1176593533, 1796472565, 1179347902, 1794665580,
	1182099496, 1792854372, 1184848308, 1791038946,
	1187594332, 1789219305, 1190337562, 1787395453,
	1193077991, 1785567396, 1195815612, 1783735137,
	1198550419, 1781898681, 1201282407, 1780058032,
	1204011567, 1778213194, 1206737894, 1776364172,
	1209461382, 1774510970, 1212182024, 1772653593,
	1214899813, 1770792044, 1217614743, 1768926328,
	1220326809, 1767056450, 1223036002, 1765182414,
	1225742318, 1763304224, 1228445750, 1761421885,
	1231146291, 1759535401, 1233843935, 1757644777,
	1236538675, 1755750017, 1239230506, 1753851126,
	1241919421, 1751948107, 1244605414, 1750040966,
	1247288478, 1748129707, 1249968606, 1746214334,
	1252645794, 1744294853, 1255320034, 1742371267,
	1257991320, 1740443581, 1260659646, 1738511799,
	1263325005, 1736575927, 1265987392, 1734635968,
	1268646800, 1732691928, 1271303222, 1730743810,
	1273956653, 1728791620, 1276607086, 1726835361,
	1279254516, 1724875040, 1281898935, 1722910659,
	1284540337, 1720942225, 1287178717, 1718969740,
	1289814068, 1716993211, 1292446384, 1715012642,
	1295075659, 1713028037, 1297701886, 1711039401,
	1300325060, 1709046739, 1302945174, 1707050055,
	1305562222, 1705049355, 1308176198, 1703044642,
	1310787095, 1701035922, 1313394909, 1699023199,
	1315999631, 1697006479, 1318601257, 1694985765,
	1321199781, 1692961062, 1323795195, 1690932376,
	1326387494, 1688899711, 1328976672, 1686863072,
	1331562723, 1684822463, 1334145641, 1682777890,
	1336725419, 1680729357, 1339302052, 1678676870,
	1341875533, 1676620432, 1344445857, 1674560049,
	1347013017, 1672495725, 1349577007, 1670427466,
	1352137822, 1668355276, 1354695455, 1666279161,
	1357249901, 1664199124, 1359801152, 1662115172,
	1362349204, 1660027308, 1364894050, 1657935539,
	1367435685, 1655839867, 1369974101, 1653740300,
	1372509294, 1651636841, 1375041258, 1649529496,
	1377569986, 1647418269, 1380095472, 1645303166,
	1382617710, 1643184191, 1385136696, 1641061349,
	1387652422, 1638934646, 1390164882, 1636804087,
	1392674072, 1634669676, 1395179984, 1632531418,
	1397682613, 1630389319, 1400181954, 1628243383,
	1402678000, 1626093616, 1405170745, 1623940023,
	1407660183, 1621782608, 1410146309, 1619621377,
	1412629117, 1617456335, 1415108601, 1615287487,
	1417584755, 1613114838, 1420057574, 1610938393,
	1422527051, 1608758157, 1424993180, 1606574136,
	1427455956, 1604386335, 1429915374, 1602194758,
	1432371426, 1599999411, 1434824109, 1597800299,
	1437273414, 1595597428, 1439719338, 1593390801,
	1442161874, 1591180426, 1444601017, 1588966306,
	1447036760, 1586748447, 1449469098, 1584526854,
	1451898025, 1582301533, 1454323536, 1580072489,
	1456745625, 1577839726, 1459164286, 1575603251,
	1461579514, 1573363068, 1463991302, 1571119183,
	1466399645, 1568871601, 1468804538, 1566620327,
	1471205974, 1564365367, 1473603949, 1562106725,
	1475998456, 1559844408, 1478389489, 1557578421,
	1480777044, 1555308768, 1483161115, 1553035455,
	1485541696, 1550758488, 1487918781, 1548477872,
	1490292364, 1546193612, 1492662441, 1543905714,
	1495029006, 1541614183, 1497392053, 1539319024,
	1499751576, 1537020244, 1502107570, 1534717846,
	1504460029, 1532411837, 1506808949, 1530102222,
	1509154322, 1527789007, 1511496145, 1525472197,
	1513834411, 1523151797, 1516169114, 1520827813,
	1518500250, 1518500250,
}

// RevTab is the 12-bit bit-reversal permutation. Transforms smaller than
// 4096 points index it with a right shift so one table serves every size.
var RevTab = [4096]uint16{
	0, 3072, 1536, 2816, 768, 3840, 1408, 2432, 384, 3456, 1920, 2752,
	704, 3776, 1216, 2240, 192, 3264, 1728, 3008, 960, 4032, 1376, 2400,
	352, 3424, 1888, 2656, 608, 3680, 1120, 2144, 96, 3168, 1632, 2912,
	864, 3936, 1504, 2528, 480, 3552, 2016, 2736, 688, 3760, 1200, 2224,
	176, 3248, 1712, 2992, 944, 4016, 1328, 2352, 304, 3376, 1840, 2608,
	560, 3632, 1072, 2096, 48, 3120, 1584, 2864, 816, 3888, 1456, 2480,
	432, 3504, 1968, 2800, 752, 3824, 1264, 2288, 240, 3312, 1776, 3056,
	1008, 4080, 1368, 2392, 344, 3416, 1880, 2648, 600, 3672, 1112, 2136,
	88, 3160, 1624, 2904, 856, 3928, 1496, 2520, 472, 3544, 2008, 2712,
	664, 3736, 1176, 2200, 152, 3224, 1688, 2968, 920, 3992, 1304, 2328,
	280, 3352, 1816, 2584, 536, 3608, 1048, 2072, 24, 3096, 1560, 2840,
	792, 3864, 1432, 2456, 408, 3480, 1944, 2776, 728, 3800, 1240, 2264,
	216, 3288, 1752, 3032, 984, 4056, 1400, 2424, 376, 3448, 1912, 2680,
	632, 3704, 1144, 2168, 120, 3192, 1656, 2936, 888, 3960, 1528, 2552,
	504, 3576, 2040, 2732, 684, 3756, 1196, 2220, 172, 3244, 1708, 2988,
	940, 4012, 1324, 2348, 300, 3372, 1836, 2604, 556, 3628, 1068, 2092,
	44, 3116, 1580, 2860, 812, 3884, 1452, 2476, 428, 3500, 1964, 2796,
	748, 3820, 1260, 2284, 236, 3308, 1772, 3052, 1004, 4076, 1356, 2380,
	332, 3404, 1868, 2636, 588, 3660, 1100, 2124, 76, 3148, 1612, 2892,
	844, 3916, 1484, 2508, 460, 3532, 1996, 2700, 652, 3724, 1164, 2188,
	140, 3212, 1676, 2956, 908, 3980, 1292, 2316, 268, 3340, 1804, 2572,
	524, 3596, 1036, 2060, 12, 3084, 1548, 2828, 780, 3852, 1420, 2444,
	396, 3468, 1932, 2764, 716, 3788, 1228, 2252, 204, 3276, 1740, 3020,
	972, 4044, 1388, 2412, 364, 3436, 1900, 2668, 620, 3692, 1132, 2156,
	108, 3180, 1644, 2924, 876, 3948, 1516, 2540, 492, 3564, 2028, 2748,
	700, 3772, 1212, 2236, 188, 3260, 1724, 3004, 956, 4028, 1340, 2364,
	316, 3388, 1852, 2620, 572, 3644, 1084, 2108, 60, 3132, 1596, 2876,
	828, 3900, 1468, 2492, 444, 3516, 1980, 2812, 764, 3836, 1276, 2300,
	252, 3324, 1788, 3068, 1020, 4092, 1366, 2390, 342, 3414, 1878, 2646,
	598, 3670, 1110, 2134, 86, 3158, 1622, 2902, 854, 3926, 1494, 2518,
	470, 3542, 2006, 2710, 662, 3734, 1174, 2198, 150, 3222, 1686, 2966,
	918, 3990, 1302, 2326, 278, 3350, 1814, 2582, 534, 3606, 1046, 2070,
	22, 3094, 1558, 2838, 790, 3862, 1430, 2454, 406, 3478, 1942, 2774,
	726, 3798, 1238, 2262, 214, 3286, 1750, 3030, 982, 4054, 1398, 2422,
	374, 3446, 1910, 2678, 630, 3702, 1142, 2166, 118, 3190, 1654, 2934,
	886, 3958, 1526, 2550, 502, 3574, 2038, 2726, 678, 3750, 1190, 2214,
	166, 3238, 1702, 2982, 934, 4006, 1318, 2342, 294, 3366, 1830, 2598,
	550, 3622, 1062, 2086, 38, 3110, 1574, 2854, 806, 3878, 1446, 2470,
	422, 3494, 1958, 2790, 742, 3814, 1254, 2278, 230, 3302, 1766, 3046,
	998, 4070, 1350, 2374, 326, 3398, 1862, 2630, 582, 3654, 1094, 2118,
	70, 3142, 1606, 2886, 838, 3910, 1478, 2502, 454, 3526, 1990, 2694,
	646, 3718, 1158, 2182, 134, 3206, 1670, 2950, 902, 3974, 1286, 2310,
	262, 3334, 1798, 2566, 518, 3590, 1030, 2054, 6, 3078, 1542, 2822,
	774, 3846, 1414, 2438, 390, 3462, 1926, 2758, 710, 3782, 1222, 2246,
	198, 3270, 1734, 3014, 966, 4038, 1382, 2406, 358, 3430, 1894, 2662,
	614, 3686, 1126, 2150, 102, 3174, 1638, 2918, 870, 3942, 1510, 2534,
	486, 3558, 2022, 2742, 694, 3766, 1206, 2230, 182, 3254, 1718, 2998,
	950, 4022, 1334, 2358, 310, 3382, 1846, 2614, 566, 3638, 1078, 2102,
	54, 3126, 1590, 2870, 822, 3894, 1462, 2486, 438, 3510, 1974, 2806,
	758, 3830, 1270, 2294, 246, 3318, 1782, 3062, 1014, 4086, 1374, 2398,
	350, 3422, 1886, 2654, 606, 3678, 1118, 2142, 94, 3166, 1630, 2910,
	862, 3934, 1502, 2526, 478, 3550, 2014, 2718, 670, 3742, 1182, 2206,
	158, 3230, 1694, 2974, 926, 3998, 1310, 2334, 286, 3358, 1822, 2590,
	542, 3614, 1054, 2078, 30, 3102, 1566, 2846, 798, 3870, 1438, 2462,
	414, 3486, 1950, 2782, 734, 3806, 1246, 2270, 222, 3294, 1758, 3038,
	990, 4062, 1406, 2430, 382, 3454, 1918, 2686, 638, 3710, 1150, 2174,
	126, 3198, 1662, 2942, 894, 3966, 1534, 2558, 510, 3582, 2046, 2731,
	683, 3755, 1195, 2219, 171, 3243, 1707, 2987, 939, 4011, 1323, 2347,
	299, 3371, 1835, 2603, 555, 3627, 1067, 2091, 43, 3115, 1579, 2859,
	811, 3883, 1451, 2475, 427, 3499, 1963, 2795, 747, 3819, 1259, 2283,
	235, 3307, 1771, 3051, 1003, 4075, 1355, 2379, 331, 3403, 1867, 2635,
	587, 3659, 1099, 2123, 75, 3147, 1611, 2891, 843, 3915, 1483, 2507,
	459, 3531, 1995, 2699, 651, 3723, 1163, 2187, 139, 3211, 1675, 2955,
	907, 3979, 1291, 2315, 267, 3339, 1803, 2571, 523, 3595, 1035, 2059,
	11, 3083, 1547, 2827, 779, 3851, 1419, 2443, 395, 3467, 1931, 2763,
	715, 3787, 1227, 2251, 203, 3275, 1739, 3019, 971, 4043, 1387, 2411,
	363, 3435, 1899, 2667, 619, 3691, 1131, 2155, 107, 3179, 1643, 2923,
	875, 3947, 1515, 2539, 491, 3563, 2027, 2747, 699, 3771, 1211, 2235,
	187, 3259, 1723, 3003, 955, 4027, 1339, 2363, 315, 3387, 1851, 2619,
	571, 3643, 1083, 2107, 59, 3131, 1595, 2875, 827, 3899, 1467, 2491,
	443, 3515, 1979, 2811, 763, 3835, 1275, 2299, 251, 3323, 1787, 3067,
	1019, 4091, 1363, 2387, 339, 3411, 1875, 2643, 595, 3667, 1107, 2131,
	83, 3155, 1619, 2899, 851, 3923, 1491, 2515, 467, 3539, 2003, 2707,
	659, 3731, 1171, 2195, 147, 3219, 1683, 2963, 915, 3987, 1299, 2323,
	275, 3347, 1811, 2579, 531, 3603, 1043, 2067, 19, 3091, 1555, 2835,
	787, 3859, 1427, 2451, 403, 3475, 1939, 2771, 723, 3795, 1235, 2259,
	211, 3283, 1747, 3027, 979, 4051, 1395, 2419, 371, 3443, 1907, 2675,
	627, 3699, 1139, 2163, 115, 3187, 1651, 2931, 883, 3955, 1523, 2547,
	499, 3571, 2035, 2723, 675, 3747, 1187, 2211, 163, 3235, 1699, 2979,
	931, 4003, 1315, 2339, 291, 3363, 1827, 2595, 547, 3619, 1059, 2083,
	35, 3107, 1571, 2851, 803, 3875, 1443, 2467, 419, 3491, 1955, 2787,
	739, 3811, 1251, 2275, 227, 3299, 1763, 3043, 995, 4067, 1347, 2371,
	323, 3395, 1859, 2627, 579, 3651, 1091, 2115, 67, 3139, 1603, 2883,
	835, 3907, 1475, 2499, 451, 3523, 1987, 2691, 643, 3715, 1155, 2179,
	131, 3203, 1667, 2947, 899, 3971, 1283, 2307, 259, 3331, 1795, 2563,
	515, 3587, 1027, 2051, 3, 3075, 1539, 2819, 771, 3843, 1411, 2435,
	387, 3459, 1923, 2755, 707, 3779, 1219, 2243, 195, 3267, 1731, 3011,
	963, 4035, 1379, 2403, 355, 3427, 1891, 2659, 611, 3683, 1123, 2147,
	99, 3171, 1635, 2915, 867, 3939, 1507, 2531, 483, 3555, 2019, 2739,
	691, 3763, 1203, 2227, 179, 3251, 1715, 2995, 947, 4019, 1331, 2355,
	307, 3379, 1843, 2611, 563, 3635, 1075, 2099, 51, 3123, 1587, 2867,
	819, 3891, 1459, 2483, 435, 3507, 1971, 2803, 755, 3827, 1267, 2291,
	243, 3315, 1779, 3059, 1011, 4083, 1371, 2395, 347, 3419, 1883, 2651,
	603, 3675, 1115, 2139, 91, 3163, 1627, 2907, 859, 3931, 1499, 2523,
	475, 3547, 2011, 2715, 667, 3739, 1179, 2203, 155, 3227, 1691, 2971,
	923, 3995, 1307, 2331, 283, 3355, 1819, 2587, 539, 3611, 1051, 2075,
	27, 3099, 1563, 2843, 795, 3867, 1435, 2459, 411, 3483, 1947, 2779,
	731, 3803, 1243, 2267, 219, 3291, 1755, 3035, 987, 4059, 1403, 2427,
	379, 3451, 1915, 2683, 635, 3707, 1147, 2171, 123, 3195, 1659, 2939,
	891, 3963, 1531, 2555, 507, 3579, 2043, 2735, 687, 3759, 1199, 2223,
	175, 3247, 1711, 2991, 943, 4015, 1327, 2351, 303, 3375, 1839, 2607,
	559, 3631, 1071, 2095, 47, 3119, 1583, 2863, 815, 3887, 1455, 2479,
	431, 3503, 1967, 2799, 751, 3823, 1263, 2287, 239, 3311, 1775, 3055,
	1007, 4079, 1359, 2383, 335, 3407, 1871, 2639, 591, 3663, 1103, 2127,
	79, 3151, 1615, 2895, 847, 3919, 1487, 2511, 463, 3535, 1999, 2703,
	655, 3727, 1167, 2191, 143, 3215, 1679, 2959, 911, 3983, 1295, 2319,
	271, 3343, 1807, 2575, 527, 3599, 1039, 2063, 15, 3087, 1551, 2831,
	783, 3855, 1423, 2447, 399, 3471, 1935, 2767, 719, 3791, 1231, 2255,
	207, 3279, 1743, 3023, 975, 4047, 1391, 2415, 367, 3439, 1903, 2671,
	623, 3695, 1135, 2159, 111, 3183, 1647, 2927, 879, 3951, 1519, 2543,
	495, 3567, 2031, 2751, 703, 3775, 1215, 2239, 191, 3263, 1727, 3007,
	959, 4031, 1343, 2367, 319, 3391, 1855, 2623, 575, 3647, 1087, 2111,
	63, 3135, 1599, 2879, 831, 3903, 1471, 2495, 447, 3519, 1983, 2815,
	767, 3839, 1279, 2303, 255, 3327, 1791, 3071, 1023, 4095, 1365, 2389,
	341, 3413, 1877, 2645, 597, 3669, 1109, 2133, 85, 3157, 1621, 2901,
	853, 3925, 1493, 2517, 469, 3541, 2005, 2709, 661, 3733, 1173, 2197,
	149, 3221, 1685, 2965, 917, 3989, 1301, 2325, 277, 3349, 1813, 2581,
	533, 3605, 1045, 2069, 21, 3093, 1557, 2837, 789, 3861, 1429, 2453,
	405, 3477, 1941, 2773, 725, 3797, 1237, 2261, 213, 3285, 1749, 3029,
	981, 4053, 1397, 2421, 373, 3445, 1909, 2677, 629, 3701, 1141, 2165,
	117, 3189, 1653, 2933, 885, 3957, 1525, 2549, 501, 3573, 2037, 2725,
	677, 3749, 1189, 2213, 165, 3237, 1701, 2981, 933, 4005, 1317, 2341,
	293, 3365, 1829, 2597, 549, 3621, 1061, 2085, 37, 3109, 1573, 2853,
	805, 3877, 1445, 2469, 421, 3493, 1957, 2789, 741, 3813, 1253, 2277,
	229, 3301, 1765, 3045, 997, 4069, 1349, 2373, 325, 3397, 1861, 2629,
	581, 3653, 1093, 2117, 69, 3141, 1605, 2885, 837, 3909, 1477, 2501,
	453, 3525, 1989, 2693, 645, 3717, 1157, 2181, 133, 3205, 1669, 2949,
	901, 3973, 1285, 2309, 261, 3333, 1797, 2565, 517, 3589, 1029, 2053,
	5, 3077, 1541, 2821, 773, 3845, 1413, 2437, 389, 3461, 1925, 2757,
	709, 3781, 1221, 2245, 197, 3269, 1733, 3013, 965, 4037, 1381, 2405,
	357, 3429, 1893, 2661, 613, 3685, 1125, 2149, 101, 3173, 1637, 2917,
	869, 3941, 1509, 2533, 485, 3557, 2021, 2741, 693, 3765, 1205, 2229,
	181, 3253, 1717, 2997, 949, 4021, 1333, 2357, 309, 3381, 1845, 2613,
	565, 3637, 1077, 2101, 53, 3125, 1589, 2869, 821, 3893, 1461, 2485,
	437, 3509, 1973, 2805, 757, 3829, 1269, 2293, 245, 3317, 1781, 3061,
	1013, 4085, 1373, 2397, 349, 3421, 1885, 2653, 605, 3677, 1117, 2141,
	93, 3165, 1629, 2909, 861, 3933, 1501, 2525, 477, 3549, 2013, 2717,
	669, 3741, 1181, 2205, 157, 3229, 1693, 2973, 925, 3997, 1309, 2333,
	285, 3357, 1821, 2589, 541, 3613, 1053, 2077, 29, 3101, 1565, 2845,
	797, 3869, 1437, 2461, 413, 3485, 1949, 2781, 733, 3805, 1245, 2269,
	221, 3293, 1757, 3037, 989, 4061, 1405, 2429, 381, 3453, 1917, 2685,
	637, 3709, 1149, 2173, 125, 3197, 1661, 2941, 893, 3965, 1533, 2557,
	509, 3581, 2045, 2729, 681, 3753, 1193, 2217, 169, 3241, 1705, 2985,
	937, 4009, 1321, 2345, 297, 3369, 1833, 2601, 553, 3625, 1065, 2089,
	41, 3113, 1577, 2857, 809, 3881, 1449, 2473, 425, 3497, 1961, 2793,
	745, 3817, 1257, 2281, 233, 3305, 1769, 3049, 1001, 4073, 1353, 2377,
	329, 3401, 1865, 2633, 585, 3657, 1097, 2121, 73, 3145, 1609, 2889,
	841, 3913, 1481, 2505, 457, 3529, 1993, 2697, 649, 3721, 1161, 2185,
	137, 3209, 1673, 2953, 905, 3977, 1289, 2313, 265, 3337, 1801, 2569,
	521, 3593, 1033, 2057, 9, 3081, 1545, 2825, 777, 3849, 1417, 2441,
	393, 3465, 1929, 2761, 713, 3785, 1225, 2249, 201, 3273, 1737, 3017,
	969, 4041, 1385, 2409, 361, 3433, 1897, 2665, 617, 3689, 1129, 2153,
	105, 3177, 1641, 2921, 873, 3945, 1513, 2537, 489, 3561, 2025, 2745,
	697, 3769, 1209, 2233, 185, 3257, 1721, 3001, 953, 4025, 1337, 2361,
	313, 3385, 1849, 2617, 569, 3641, 1081, 2105, 57, 3129, 1593, 2873,
	825, 3897, 1465, 2489, 441, 3513, 1977, 2809, 761, 3833, 1273, 2297,
	249, 3321, 1785, 3065, 1017, 4089, 1361, 2385, 337, 3409, 1873, 2641,
	593, 3665, 1105, 2129, 81, 3153, 1617, 2897, 849, 3921, 1489, 2513,
	465, 3537, 2001, 2705, 657, 3729, 1169, 2193, 145, 3217, 1681, 2961,
	913, 3985, 1297, 2321, 273, 3345, 1809, 2577, 529, 3601, 1041, 2065,
	17, 3089, 1553, 2833, 785, 3857, 1425, 2449, 401, 3473, 1937, 2769,
	721, 3793, 1233, 2257, 209, 3281, 1745, 3025, 977, 4049, 1393, 2417,
	369, 3441, 1905, 2673, 625, 3697, 1137, 2161, 113, 3185, 1649, 2929,
	881, 3953, 1521, 2545, 497, 3569, 2033, 2721, 673, 3745, 1185, 2209,
	161, 3233, 1697, 2977, 929, 4001, 1313, 2337, 289, 3361, 1825, 2593,
	545, 3617, 1057, 2081, 33, 3105, 1569, 2849, 801, 3873, 1441, 2465,
	417, 3489, 1953, 2785, 737, 3809, 1249, 2273, 225, 3297, 1761, 3041,
	993, 4065, 1345, 2369, 321, 3393, 1857, 2625, 577, 3649, 1089, 2113,
	65, 3137, 1601, 2881, 833, 3905, 1473, 2497, 449, 3521, 1985, 2689,
	641, 3713, 1153, 2177, 129, 3201, 1665, 2945, 897, 3969, 1281, 2305,
	257, 3329, 1793, 2561, 513, 3585, 1025, 2049, 1, 3073, 1537, 2817,
	769, 3841, 1409, 2433, 385, 3457, 1921, 2753, 705, 3777, 1217, 2241,
	193, 3265, 1729, 3009, 961, 4033, 1377, 2401, 353, 3425, 1889, 2657,
	609, 3681, 1121, 2145, 97, 3169, 1633, 2913, 865, 3937, 1505, 2529,
	481, 3553, 2017, 2737, 689, 3761, 1201, 2225, 177, 3249, 1713, 2993,
	945, 4017, 1329, 2353, 305, 3377, 1841, 2609, 561, 3633, 1073, 2097,
	49, 3121, 1585, 2865, 817, 3889, 1457, 2481, 433, 3505, 1969, 2801,
	753, 3825, 1265, 2289, 241, 3313, 1777, 3057, 1009, 4081, 1369, 2393,
	345, 3417, 1881, 2649, 601, 3673, 1113, 2137, 89, 3161, 1625, 2905,
	857, 3929, 1497, 2521, 473, 3545, 2009, 2713, 665, 3737, 1177, 2201,
	153, 3225, 1689, 2969, 921, 3993, 1305, 2329, 281, 3353, 1817, 2585,
	537, 3609, 1049, 2073, 25, 3097, 1561, 2841, 793, 3865, 1433, 2457,
	409, 3481, 1945, 2777, 729, 3801, 1241, 2265, 217, 3289, 1753, 3033,
	985, 4057, 1401, 2425, 377, 3449, 1913, 2681, 633, 3705, 1145, 2169,
	121, 3193, 1657, 2937, 889, 3961, 1529, 2553, 505, 3577, 2041, 2733,
	685, 3757, 1197, 2221, 173, 3245, 1709, 2989, 941, 4013, 1325, 2349,
	301, 3373, 1837, 2605, 557, 3629, 1069, 2093, 45, 3117, 1581, 2861,
	813, 3885, 1453, 2477, 429, 3501, 1965, 2797, 749, 3821, 1261, 2285,
	237, 3309, 1773, 3053, 1005, 4077, 1357, 2381, 333, 3405, 1869, 2637,
	589, 3661, 1101, 2125, 77, 3149, 1613, 2893, 845, 3917, 1485, 2509,
	461, 3533, 1997, 2701, 653, 3725, 1165, 2189, 141, 3213, 1677, 2957,
	909, 3981, 1293, 2317, 269, 3341, 1805, 2573, 525, 3597, 1037, 2061,
	13, 3085, 1549, 2829, 781, 3853, 1421, 2445, 397, 3469, 1933, 2765,
	717, 3789, 1229, 2253, 205, 3277, 1741, 3021, 973, 4045, 1389, 2413,
	365, 3437, 1901, 2669, 621, 3693, 1133, 2157, 109, 3181, 1645, 2925,
	877, 3949, 1517, 2541, 493, 3565, 2029, 2749, 701, 3773, 1213, 2237,
	189, 3261, 1725, 3005, 957, 4029, 1341, 2365, 317, 3389, 1853, 2621,
	573, 3645, 1085, 2109, 61, 3133, 1597, 2877, 829, 3901, 1469, 2493,
	445, 3517, 1981, 2813, 765, 3837, 1277, 2301, 253, 3325, 1789, 3069,
	1021, 4093, 1367, 2391, 343, 3415, 1879, 2647, 599, 3671, 1111, 2135,
	87, 3159, 1623, 2903, 855, 3927, 1495, 2519, 471, 3543, 2007, 2711,
	663, 3735, 1175, 2199, 151, 3223, 1687, 2967, 919, 3991, 1303, 2327,
	279, 3351, 1815, 2583, 535, 3607, 1047, 2071, 23, 3095, 1559, 2839,
	791, 3863, 1431, 2455, 407, 3479, 1943, 2775, 727, 3799, 1239, 2263,
	215, 3287, 1751, 3031, 983, 4055, 1399, 2423, 375, 3447, 1911, 2679,
	631, 3703, 1143, 2167, 119, 3191, 1655, 2935, 887, 3959, 1527, 2551,
	503, 3575, 2039, 2727, 679, 3751, 1191, 2215, 167, 3239, 1703, 2983,
	935, 4007, 1319, 2343, 295, 3367, 1831, 2599, 551, 3623, 1063, 2087,
	39, 3111, 1575, 2855, 807, 3879, 1447, 2471, 423, 3495, 1959, 2791,
	743, 3815, 1255, 2279, 231, 3303, 1767, 3047, 999, 4071, 1351, 2375,
	327, 3399, 1863, 2631, 583, 3655, 1095, 2119, 71, 3143, 1607, 2887,
	839, 3911, 1479, 2503, 455, 3527, 1991, 2695, 647, 3719, 1159, 2183,
	135, 3207, 1671, 2951, 903, 3975, 1287, 2311, 263, 3335, 1799, 2567,
	519, 3591, 1031, 2055, 7, 3079, 1543, 2823, 775, 3847, 1415, 2439,
	391, 3463, 1927, 2759, 711, 3783, 1223, 2247, 199, 3271, 1735, 3015,
	967, 4039, 1383, 2407, 359, 3431, 1895, 2663, 615, 3687, 1127, 2151,
	103, 3175, 1639, 2919, 871, 3943, 1511, 2535, 487, 3559, 2023, 2743,
	695, 3767, 1207, 2231, 183, 3255, 1719, 2999, 951, 4023, 1335, 2359,
	311, 3383, 1847, 2615, 567, 3639, 1079, 2103, 55, 3127, 1591, 2871,
	823, 3895, 1463, 2487, 439, 3511, 1975, 2807, 759, 3831, 1271, 2295,
	247, 3319, 1783, 3063, 1015, 4087, 1375, 2399, 351, 3423, 1887, 2655,
	607, 3679, 1119, 2143, 95, 3167, 1631, 2911, 863, 3935, 1503, 2527,
	479, 3551, 2015, 2719, 671, 3743, 1183, 2207, 159, 3231, 1695, 2975,
	927, 3999, 1311, 2335, 287, 3359, 1823, 2591, 543, 3615, 1055, 2079,
	31, 3103, 1567, 2847, 799, 3871, 1439, 2463, 415, 3487, 1951, 2783,
	735, 3807, 1247, 2271, 223, 3295, 1759, 3039, 991, 4063, 1407, 2431,
	383, 3455, 1919, 2687, 639, 3711, 1151, 2175, 127, 3199, 1663, 2943,
	895, 3967, 1535, 2559, 511, 3583, 2047, 2730, 682, 3754, 1194, 2218,
	170, 3242, 1706, 2986, 938, 4010, 1322, 2346, 298, 3370, 1834, 2602,
	554, 3626, 1066, 2090, 42, 3114, 1578, 2858, 810, 3882, 1450, 2474,
	426, 3498, 1962, 2794, 746, 3818, 1258, 2282, 234, 3306, 1770, 3050,
	1002, 4074, 1354, 2378, 330, 3402, 1866, 2634, 586, 3658, 1098, 2122,
	74, 3146, 1610, 2890, 842, 3914, 1482, 2506, 458, 3530, 1994, 2698,
	650, 3722, 1162, 2186, 138, 3210, 1674, 2954, 906, 3978, 1290, 2314,
	266, 3338, 1802, 2570, 522, 3594, 1034, 2058, 10, 3082, 1546, 2826,
	778, 3850, 1418, 2442, 394, 3466, 1930, 2762, 714, 3786, 1226, 2250,
	202, 3274, 1738, 3018, 970, 4042, 1386, 2410, 362, 3434, 1898, 2666,
	618, 3690, 1130, 2154, 106, 3178, 1642, 2922, 874, 3946, 1514, 2538,
	490, 3562, 2026, 2746, 698, 3770, 1210, 2234, 186, 3258, 1722, 3002,
	954, 4026, 1338, 2362, 314, 3386, 1850, 2618, 570, 3642, 1082, 2106,
	58, 3130, 1594, 2874, 826, 3898, 1466, 2490, 442, 3514, 1978, 2810,
	762, 3834, 1274, 2298, 250, 3322, 1786, 3066, 1018, 4090, 1362, 2386,
	338, 3410, 1874, 2642, 594, 3666, 1106, 2130, 82, 3154, 1618, 2898,
	850, 3922, 1490, 2514, 466, 3538, 2002, 2706, 658, 3730, 1170, 2194,
	146, 3218, 1682, 2962, 914, 3986, 1298, 2322, 274, 3346, 1810, 2578,
	530, 3602, 1042, 2066, 18, 3090, 1554, 2834, 786, 3858, 1426, 2450,
	402, 3474, 1938, 2770, 722, 3794, 1234, 2258, 210, 3282, 1746, 3026,
	978, 4050, 1394, 2418, 370, 3442, 1906, 2674, 626, 3698, 1138, 2162,
	114, 3186, 1650, 2930, 882, 3954, 1522, 2546, 498, 3570, 2034, 2722,
	674, 3746, 1186, 2210, 162, 3234, 1698, 2978, 930, 4002, 1314, 2338,
	290, 3362, 1826, 2594, 546, 3618, 1058, 2082, 34, 3106, 1570, 2850,
	802, 3874, 1442, 2466, 418, 3490, 1954, 2786, 738, 3810, 1250, 2274,
	226, 3298, 1762, 3042, 994, 4066, 1346, 2370, 322, 3394, 1858, 2626,
	578, 3650, 1090, 2114, 66, 3138, 1602, 2882, 834, 3906, 1474, 2498,
	450, 3522, 1986, 2690, 642, 3714, 1154, 2178, 130, 3202, 1666, 2946,
	898, 3970, 1282, 2306, 258, 3330, 1794, 2562, 514, 3586, 1026, 2050,
	2, 3074, 1538, 2818, 770, 3842, 1410, 2434, 386, 3458, 1922, 2754,
	706, 3778, 1218, 2242, 194, 3266, 1730, 3010, 962, 4034, 1378, 2402,
	354, 3426, 1890, 2658, 610, 3682, 1122, 2146, 98, 3170, 1634, 2914,
	866, 3938, 1506, 2530, 482, 3554, 2018, 2738, 690, 3762, 1202, 2226,
	178, 3250, 1714, 2994, 946, 4018, 1330, 2354, 306, 3378, 1842, 2610,
	562, 3634, 1074, 2098, 50, 3122, 1586, 2866, 818, 3890, 1458, 2482,
	434, 3506, 1970, 2802, 754, 3826, 1266, 2290, 242, 3314, 1778, 3058,
	1010, 4082, 1370, 2394, 346, 3418, 1882, 2650, 602, 3674, 1114, 2138,
	90, 3162, 1626, 2906, 858, 3930, 1498, 2522, 474, 3546, 2010, 2714,
	666, 3738, 1178, 2202, 154, 3226, 1690, 2970, 922, 3994, 1306, 2330,
	282, 3354, 1818, 2586, 538, 3610, 1050, 2074, 26, 3098, 1562, 2842,
	794, 3866, 1434, 2458, 410, 3482, 1946, 2778, 730, 3802, 1242, 2266,
	218, 3290, 1754, 3034, 986, 4058, 1402, 2426, 378, 3450, 1914, 2682,
	634, 3706, 1146, 2170, 122, 3194, 1658, 2938, 890, 3962, 1530, 2554,
	506, 3578, 2042, 2734, 686, 3758, 1198, 2222, 174, 3246, 1710, 2990,
	942, 4014, 1326, 2350, 302, 3374, 1838, 2606, 558, 3630, 1070, 2094,
	46, 3118, 1582, 2862, 814, 3886, 1454, 2478, 430, 3502, 1966, 2798,
	750, 3822, 1262, 2286, 238, 3310, 1774, 3054, 1006, 4078, 1358, 2382,
	334, 3406, 1870, 2638, 590, 3662, 1102, 2126, 78, 3150, 1614, 2894,
	846, 3918, 1486, 2510, 462, 3534, 1998, 2702, 654, 3726, 1166, 2190,
	142, 3214, 1678, 2958, 910, 3982, 1294, 2318, 270, 3342, 1806, 2574,
	526, 3598, 1038, 2062, 14, 3086, 1550, 2830, 782, 3854, 1422, 2446,
	398, 3470, 1934, 2766, 718, 3790, 1230, 2254, 206, 3278, 1742, 3022,
	974, 4046, 1390, 2414, 366, 3438, 1902, 2670, 622, 3694, 1134, 2158,
	110, 3182, 1646, 2926, 878, 3950, 1518, 2542, 494, 3566, 2030, 2750,
	702, 3774, 1214, 2238, 190, 3262, 1726, 3006, 958, 4030, 1342, 2366,
	318, 3390, 1854, 2622, 574, 3646, 1086, 2110, 62, 3134, 1598, 2878,
	830, 3902, 1470, 2494, 446, 3518, 1982, 2814, 766, 3838, 1278, 2302,
	254, 3326, 1790, 3070, 1022, 4094, 1364, 2388, 340, 3412, 1876, 2644,
	596, 3668, 1108, 2132, 84, 3156, 1620, 2900, 852, 3924, 1492, 2516,
	468, 3540, 2004, 2708, 660, 3732, 1172, 2196, 148, 3220, 1684, 2964,
	916, 3988, 1300, 2324, 276, 3348, 1812, 2580, 532, 3604, 1044, 2068,
	20, 3092, 1556, 2836, 788, 3860, 1428, 2452, 404, 3476, 1940, 2772,
	724, 3796, 1236, 2260, 212, 3284, 1748, 3028, 980, 4052, 1396, 2420,
	372, 3444, 1908, 2676, 628, 3700, 1140, 2164, 116, 3188, 1652, 2932,
	884, 3956, 1524, 2548, 500, 3572, 2036, 2724, 676, 3748, 1188, 2212,
	164, 3236, 1700, 2980, 932, 4004, 1316, 2340, 292, 3364, 1828, 2596,
	548, 3620, 1060, 2084, 36, 3108, 1572, 2852, 804, 3876, 1444, 2468,
	420, 3492, 1956, 2788, 740, 3812, 1252, 2276, 228, 3300, 1764, 3044,
	996, 4068, 1348, 2372, 324, 3396, 1860, 2628, 580, 3652, 1092, 2116,
	68, 3140, 1604, 2884, 836, 3908, 1476, 2500, 452, 3524, 1988, 2692,
	644, 3716, 1156, 2180, 132, 3204, 1668, 2948, 900, 3972, 1284, 2308,
	260, 3332, 1796, 2564, 516, 3588, 1028, 2052, 4, 3076, 1540, 2820,
	772, 3844, 1412, 2436, 388, 3460, 1924, 2756, 708, 3780, 1220, 2244,
	196, 3268, 1732, 3012, 964, 4036, 1380, 2404, 356, 3428, 1892, 2660,
	612, 3684, 1124, 2148, 100, 3172, 1636, 2916, 868, 3940, 1508, 2532,
	484, 3556, 2020, 2740, 692, 3764, 1204, 2228, 180, 3252, 1716, 2996,
	948, 4020, 1332, 2356, 308, 3380, 1844, 2612, 564, 3636, 1076, 2100,
	52, 3124, 1588, 2868, 820, 3892, 1460, 2484, 436, 3508, 1972, 2804,
	756, 3828, 1268, 2292, 244, 3316, 1780, 3060, 1012, 4084, 1372, 2396,
	348, 3420, 1884, 2652, 604, 3676, 1116, 2140, 92, 3164, 1628, 2908,
	860, 3932, 1500, 2524, 476, 3548, 2012, 2716, 668, 3740, 1180, 2204,
	156, 3228, 1692, 2972, 924, 3996, 1308, 2332, 284, 3356, 1820, 2588,
	540, 3612, 1052, 2076, 28, 3100, 1564, 2844, 796, 3868, 1436, 2460,
	412, 3484, 1948, 2780, 732, 3804, 1244, 2268, 220, 3292, 1756, 3036,
	988, 4060, 1404, 2428, 380, 3452, 1916, 2684, 636, 3708, 1148, 2172,
	124, 3196, 1660, 2940, 892, 3964, 1532, 2556, 508, 3580, 2044, 2728,
	680, 3752, 1192, 2216, 168, 3240, 1704, 2984, 936, 4008, 1320, 2344,
	296, 3368, 1832, 2600, 552, 3624, 1064, 2088, 40, 3112, 1576, 2856,
	808, 3880, 1448, 2472, 424, 3496, 1960, 2792, 744, 3816, 1256, 2280,
	232, 3304, 1768, 3048, 1000, 4072, 1352, 2376, 328, 3400, 1864, 2632,
	584, 3656, 1096, 2120, 72, 3144, 1608, 2888, 840, 3912, 1480, 2504,
	456, 3528, 1992, 2696, 648, 3720, 1160, 2184, 136, 3208, 1672, 2952,
	904, 3976, 1288, 2312, 264, 3336, 1800, 2568, 520, 3592, 1032, 2056,
	8, 3080, 1544, 2824, 776, 3848, 1416, 2440, 392, 3464, 1928, 2760,
	712, 3784, 1224, 2248, 200, 3272, 1736, 3016, 968, 4040, 1384, 2408,
	360, 3432, 1896, 2664, 616, 3688, 1128, 2152, 104, 3176, 1640, 2920,
	872, 3944, 1512, 2536, 488, 3560, 2024, 2744, 696, 3768, 1208, 2232,
	184, 3256, 1720, 3000, 952, 4024, 1336, 2360, 312, 3384, 1848, 2616,
	568, 3640, 1080, 2104, 56, 3128, 1592, 2872, 824, 3896, 1464, 2488,
	440, 3512, 1976, 2808, 760, 3832, 1272, 2296, 248, 3320, 1784, 3064,
	1016, 4088, 1360, 2384, 336, 3408, 1872, 2640, 592, 3664, 1104, 2128,
	80, 3152, 1616, 2896, 848, 3920, 1488, 2512, 464, 3536, 2000, 2704,
	656, 3728, 1168, 2192, 144, 3216, 1680, 2960, 912, 3984, 1296, 2320,
	272, 3344, 1808, 2576, 528, 3600, 1040, 2064, 16, 3088, 1552, 2832,
	784, 3856, 1424, 2448, 400, 3472, 1936, 2768, 720, 3792, 1232, 2256,
	208, 3280, 1744, 3024, 976, 4048, 1392, 2416, 368, 3440, 1904, 2672,
	624, 3696, 1136, 2160, 112, 3184, 1648, 2928, 880, 3952, 1520, 2544,
	496, 3568, 2032, 2720, 672, 3744, 1184, 2208, 160, 3232, 1696, 2976,
	928, 4000, 1312, 2336, 288, 3360, 1824, 2592, 544, 3616, 1056, 2080,
	32, 3104, 1568, 2848, 800, 3872, 1440, 2464, 416, 3488, 1952, 2784,
	736, 3808, 1248, 2272, 224, 3296, 1760, 3040, 992, 4064, 1344, 2368,
	320, 3392, 1856, 2624, 576, 3648, 1088, 2112, 64, 3136, 1600, 2880,
	832, 3904, 1472, 2496, 448, 3520, 1984, 2688, 640, 3712, 1152, 2176,
	128, 3200, 1664, 2944, 896, 3968, 1280, 2304, 256, 3328, 1792, 2560,
	512, 3584, 1024, 2048,
}

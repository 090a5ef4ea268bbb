package tables

// Sine windows in Q31 for every supported block size. Entry i of the window
// for block size n is sin((i+0.5)*pi/(2n)); the windowing step consumes the
// full table symmetrically around its midpoint during overlap-add.

var sineWindow64 = [64]int32{
	26352928, 79042909, 131685278, 184248325, 236700388, 289009871,
	341145265, 393075166, 444768294, 496193509, 547319836, 598116479,
	648552838, 698598533, 748223418, 797397602, 846091463, 894275671,
	941921200, 988999351, 1035481766, 1081340445, 1126547765, 1171076495,
	1214899813, 1257991320, 1300325060, 1341875533, 1382617710, 1422527051,
	1461579514, 1499751576, 1537020244, 1573363068, 1608758157, 1643184191,
	1676620432, 1709046739, 1740443581, 1770792044, 1800073849, 1828271356,
	1855367581, 1881346202, 1906191570, 1929888720, 1952423377, 1973781967,
	1993951625, 2012920201, 2030676269, 2047209133, 2062508835, 2076566160,
	2089372638, 2100920556, 2111202959, 2120213651, 2127947206, 2134398966,
	2139565043, 2143442326, 2146028480, 2147321946,
}

var sineWindow128 = [128]int32{
	13176712, 39528151, 65873638, 92209205, 118530885, 144834714,
	171116733, 197372981, 223599506, 249792358, 275947592, 302061269,
	328129457, 354148230, 380113669, 406021865, 431868915, 457650927,
	483364019, 509004318, 534567963, 560051104, 585449903, 610760536,
	635979190, 661102068, 686125387, 711045377, 735858287, 760560380,
	785147934, 809617249, 833964638, 858186435, 882278992, 906238681,
	930061894, 953745043, 977284562, 1000676905, 1023918550, 1047005996,
	1069935768, 1092704411, 1115308496, 1137744621, 1160009405, 1182099496,
	1204011567, 1225742318, 1247288478, 1268646800, 1289814068, 1310787095,
	1331562723, 1352137822, 1372509294, 1392674072, 1412629117, 1432371426,
	1451898025, 1471205974, 1490292364, 1509154322, 1527789007, 1546193612,
	1564365367, 1582301533, 1599999411, 1617456335, 1634669676, 1651636841,
	1668355276, 1684822463, 1701035922, 1716993211, 1732691928, 1748129707,
	1763304224, 1778213194, 1792854372, 1807225553, 1821324572, 1835149306,
	1848697674, 1861967634, 1874957189, 1887664383, 1900087301, 1912224073,
	1924072871, 1935631910, 1946899451, 1957873796, 1968553292, 1978936331,
	1989021350, 1998806829, 2008291295, 2017473321, 2026351522, 2034924562,
	2043191150, 2051150040, 2058800036, 2066139983, 2073168777, 2079885360,
	2086288720, 2092377892, 2098151960, 2103610054, 2108751352, 2113575080,
	2118080511, 2122266967, 2126133817, 2129680480, 2132906420, 2135811153,
	2138394240, 2140655293, 2142593971, 2144209982, 2145503083, 2146473080,
	2147119825, 2147443222,
}

var sineWindow256 = [256]int32{
	6588387, 19764913, 32940695, 46115236, 59288042, 72458615,
	85626460, 98791081, 111951983, 125108670, 138260647, 151407418,
	164548489, 177683365, 190811551, 203932553, 217045878, 230151030,
	243247518, 256334847, 269412525, 282480061, 295536961, 308582734,
	321616889, 334638936, 347648383, 360644742, 373627523, 386596237,
	399550396, 412489512, 425413098, 438320667, 451211734, 464085813,
	476942419, 489781069, 502601279, 515402566, 528184449, 540946445,
	553688076, 566408860, 579108320, 591785976, 604441352, 617073971,
	629683357, 642269036, 654830535, 667367379, 679879097, 692365218,
	704825272, 717258790, 729665303, 742044345, 754395449, 766718151,
	779011986, 791276492, 803511207, 815715670, 827889422, 840032004,
	852142959, 864221832, 876268167, 888281512, 900261413, 912207419,
	924119082, 935995952, 947837582, 959643527, 971413342, 983146583,
	994842810, 1006501581, 1018122458, 1029705004, 1041248781, 1052753357,
	1064218296, 1075643169, 1087027544, 1098370993, 1109673089, 1120933406,
	1132151521, 1143327011, 1154459456, 1165548435, 1176593533, 1187594332,
	1198550419, 1209461382, 1220326809, 1231146291, 1241919421, 1252645794,
	1263325005, 1273956653, 1284540337, 1295075659, 1305562222, 1315999631,
	1326387494, 1336725419, 1347013017, 1357249901, 1367435685, 1377569986,
	1387652422, 1397682613, 1407660183, 1417584755, 1427455956, 1437273414,
	1447036760, 1456745625, 1466399645, 1475998456, 1485541696, 1495029006,
	1504460029, 1513834411, 1523151797, 1532411837, 1541614183, 1550758488,
	1559844408, 1568871601, 1577839726, 1586748447, 1595597428, 1604386335,
	1613114838, 1621782608, 1630389319, 1638934646, 1647418269, 1655839867,
	1664199124, 1672495725, 1680729357, 1688899711, 1697006479, 1705049355,
	1713028037, 1720942225, 1728791620, 1736575927, 1744294853, 1751948107,
	1759535401, 1767056450, 1774510970, 1781898681, 1789219305, 1796472565,
	1803658189, 1810775906, 1817825449, 1824806552, 1831718951, 1838562388,
	1845336604, 1852041343, 1858676355, 1865241388, 1871736196, 1878160535,
	1884514161, 1890796837, 1897008325, 1903148392, 1909216806, 1915213340,
	1921137767, 1926989864, 1932769411, 1938476190, 1944109987, 1949670589,
	1955157788, 1960571375, 1965911148, 1971176906, 1976368450, 1981485585,
	1986528118, 1991495860, 1996388622, 2001206222, 2005948478, 2010615210,
	2015206245, 2019721407, 2024160529, 2028523442, 2032809982, 2037019988,
	2041153301, 2045209767, 2049189231, 2053091544, 2056916560, 2060664133,
	2064334124, 2067926394, 2071440808, 2074877233, 2078235540, 2081515603,
	2084717298, 2087840505, 2090885105, 2093850985, 2096738032, 2099546139,
	2102275199, 2104925109, 2107495770, 2109987085, 2112398960, 2114731305,
	2116984031, 2119157054, 2121250292, 2123263666, 2125197100, 2127050522,
	2128823862, 2130517052, 2132130030, 2133662734, 2135115107, 2136487095,
	2137778644, 2138989708, 2140120240, 2141170197, 2142139541, 2143028234,
	2143836244, 2144563539, 2145210092, 2145775880, 2146260881, 2146665076,
	2146988450, 2147230991, 2147392690, 2147473542,
}

var sineWindow512 = [512]int32{
	3294197, 9882561, 16470832, 23058947, 29646846, 36234466,
	42821744, 49408620, 55995030, 62580914, 69166208, 75750851,
	82334782, 88917937, 95500255, 102081675, 108662134, 115241570,
	121819921, 128397125, 134973122, 141547847, 148121241, 154693240,
	161263783, 167832808, 174400254, 180966058, 187530159, 194092495,
	200653003, 207211624, 213768293, 220322951, 226875535, 233425984,
	239974235, 246520228, 253063900, 259605191, 266144038, 272680379,
	279214155, 285745302, 292273760, 298799466, 305322361, 311842381,
	318359466, 324873555, 331384586, 337892498, 344397230, 350898719,
	357396906, 363891730, 370383128, 376871039, 383355404, 389836160,
	396313247, 402786604, 409256170, 415721883, 422183684, 428641511,
	435095303, 441545000, 447990541, 454431865, 460868912, 467301622,
	473729932, 480153784, 486573117, 492987869, 499397982, 505803394,
	512204045, 518599875, 524990824, 531376831, 537757837, 544133781,
	550504604, 556870245, 563230645, 569585743, 575935480, 582279796,
	588618632, 594951927, 601279623, 607601658, 613917975, 620228514,
	626533215, 632832018, 639124865, 645411696, 651692453, 657967075,
	664235505, 670497682, 676753549, 683003045, 689246113, 695482694,
	701712728, 707936158, 714152924, 720362968, 726566232, 732762657,
	738952186, 745134758, 751310318, 757478806, 763640164, 769794334,
	775941259, 782080880, 788213141, 794337982, 800455346, 806565177,
	812667415, 818762005, 824848888, 830928007, 836999305, 843062726,
	849118210, 855165703, 861205147, 867236484, 873259659, 879274614,
	885281293, 891279640, 897269597, 903251110, 909224120, 915188572,
	921144411, 927091579, 933030021, 938959681, 944880503, 950792431,
	956695411, 962589385, 968474300, 974350098, 980216726, 986074127,
	991922248, 997761031, 1003590424, 1009410370, 1015220816, 1021021705,
	1026812985, 1032594600, 1038366495, 1044128617, 1049880912, 1055623324,
	1061355801, 1067078288, 1072790730, 1078493076, 1084185270, 1089867259,
	1095538991, 1101200410, 1106851465, 1112492101, 1118122267, 1123741908,
	1129350972, 1134949406, 1140537158, 1146114174, 1151680403, 1157235792,
	1162780288, 1168313840, 1173836395, 1179347902, 1184848308, 1190337562,
	1195815612, 1201282407, 1206737894, 1212182024, 1217614743, 1223036002,
	1228445750, 1233843935, 1239230506, 1244605414, 1249968606, 1255320034,
	1260659646, 1265987392, 1271303222, 1276607086, 1281898935, 1287178717,
	1292446384, 1297701886, 1302945174, 1308176198, 1313394909, 1318601257,
	1323795195, 1328976672, 1334145641, 1339302052, 1344445857, 1349577007,
	1354695455, 1359801152, 1364894050, 1369974101, 1375041258, 1380095472,
	1385136696, 1390164882, 1395179984, 1400181954, 1405170745, 1410146309,
	1415108601, 1420057574, 1424993180, 1429915374, 1434824109, 1439719338,
	1444601017, 1449469098, 1454323536, 1459164286, 1463991302, 1468804538,
	1473603949, 1478389489, 1483161115, 1487918781, 1492662441, 1497392053,
	1502107570, 1506808949, 1511496145, 1516169114, 1520827813, 1525472197,
	1530102222, 1534717846, 1539319024, 1543905714, 1548477872, 1553035455,
	1557578421, 1562106725, 1566620327, 1571119183, 1575603251, 1580072489,
	1584526854, 1588966306, 1593390801, 1597800299, 1602194758, 1606574136,
	1610938393, 1615287487, 1619621377, 1623940023, 1628243383, 1632531418,
	1636804087, 1641061349, 1645303166, 1649529496, 1653740300, 1657935539,
	1662115172, 1666279161, 1670427466, 1674560049, 1678676870, 1682777890,
	1686863072, 1690932376, 1694985765, 1699023199, 1703044642, 1707050055,
	1711039401, 1715012642, 1718969740, 1722910659, 1726835361, 1730743810,
	1734635968, 1738511799, 1742371267, 1746214334, 1750040966, 1753851126,
	1757644777, 1761421885, 1765182414, 1768926328, 1772653593, 1776364172,
	1780058032, 1783735137, 1787395453, 1791038946, 1794665580, 1798275323,
	1801868139, 1805443995, 1809002858, 1812544694, 1816069469, 1819577151,
	1823067707, 1826541103, 1829997307, 1833436286, 1836858008, 1840262441,
	1843649553, 1847019312, 1850371686, 1853706643, 1857024153, 1860324183,
	1863606704, 1866871683, 1870119091, 1873348897, 1876561070, 1879755580,
	1882932397, 1886091491, 1889232832, 1892356392, 1895462140, 1898550047,
	1901620084, 1904672222, 1907706433, 1910722688, 1913720958, 1916701216,
	1919663432, 1922607581, 1925533633, 1928441561, 1931331338, 1934202936,
	1937056329, 1939891490, 1942708392, 1945507008, 1948287312, 1951049279,
	1953792881, 1956518093, 1959224890, 1961913246, 1964583136, 1967234535,
	1969867417, 1972481757, 1975077532, 1977654717, 1980213288, 1982753220,
	1985274489, 1987777073, 1990260946, 1992726087, 1995172471, 1997600076,
	2000008879, 2002398857, 2004769987, 2007122248, 2009455617, 2011770073,
	2014065592, 2016342155, 2018599739, 2020838323, 2023057887, 2025258408,
	2027439867, 2029602243, 2031745516, 2033869665, 2035974670, 2038060512,
	2040127172, 2042174628, 2044202863, 2046211857, 2048201592, 2050172048,
	2052123207, 2054055050, 2055967560, 2057860719, 2059734508, 2061588910,
	2063423908, 2065239484, 2067035621, 2068812302, 2070569511, 2072307231,
	2074025446, 2075724139, 2077403294, 2079062896, 2080702930, 2082323379,
	2083924228, 2085505463, 2087067068, 2088609029, 2090131331, 2091633960,
	2093116901, 2094580142, 2096023667, 2097447464, 2098851519, 2100235819,
	2101600350, 2102945101, 2104270057, 2105575208, 2106860540, 2108126041,
	2109371700, 2110597505, 2111803444, 2112989506, 2114155680, 2115301954,
	2116428319, 2117534762, 2118621275, 2119687847, 2120734467, 2121761126,
	2122767814, 2123754522, 2124721240, 2125667960, 2126594672, 2127501367,
	2128388038, 2129254676, 2130101272, 2130927819, 2131734309, 2132520734,
	2133287087, 2134033361, 2134759548, 2135465642, 2136151637, 2136817525,
	2137463301, 2138088958, 2138694490, 2139279892, 2139845159, 2140390284,
	2140915264, 2141420092, 2141904764, 2142369276, 2142813624, 2143237802,
	2143641807, 2144025635, 2144389283, 2144732748, 2145056025, 2145359112,
	2145642006, 2145904705, 2146147205, 2146369505, 2146571603, 2146753497,
	2146915184, 2147056664, 2147177934, 2147278995, 2147359845, 2147420483,
	2147460908, 2147481121,
}

var sineWindow1024 = [1024]int32{
	1647099, 4941294, 8235476, 11529640, 14823776, 18117878,
	21411936, 24705945, 27999895, 31293780, 34587590, 37881320,
	41174960, 44468503, 47761942, 51055268, 54348475, 57641553,
	60934496, 64227295, 67519943, 70812432, 74104755, 77396903,
	80688869, 83980645, 87272224, 90563597, 93854758, 97145697,
	100436408, 103726882, 107017112, 110307091, 113596810, 116886262,
	120175438, 123464332, 126752935, 130041240, 133329239, 136616925,
	139904288, 143191323, 146478021, 149764374, 153050374, 156336015,
	159621287, 162906184, 166190698, 169474820, 172758544, 176041861,
	179324764, 182607245, 185889297, 189170911, 192452080, 195732795,
	199013051, 202292838, 205572149, 208850976, 212129312, 215407149,
	218684479, 221961294, 225237587, 228513350, 231788575, 235063255,
	238337382, 241610947, 244883945, 248156366, 251428203, 254699448,
	257970095, 261240134, 264509558, 267778360, 271046532, 274314066,
	277580955, 280847190, 284112765, 287377671, 290641901, 293905447,
	297168301, 300430456, 303691904, 306952638, 310212649, 313471930,
	316730474, 319988272, 323245317, 326501602, 329757119, 333011859,
	336265816, 339518981, 342771348, 346022908, 349273654, 352523578,
	355772673, 359020930, 362268343, 365514903, 368760603, 372005435,
	375249392, 378492466, 381734649, 384975934, 388216313, 391455778,
	394694323, 397931939, 401168618, 404404353, 407639137, 410872962,
	414105819, 417337703, 420568604, 423798515, 427027430, 430255339,
	433482236, 436708113, 439932963, 443156777, 446379549, 449601270,
	452821933, 456041530, 459260055, 462477499, 465693854, 468909114,
	472123270, 475336316, 478548243, 481759043, 484968710, 488177236,
	491384614, 494590835, 497795892, 500999778, 504202485, 507404005,
	510604332, 513803457, 517001373, 520198072, 523393547, 526587791,
	529780796, 532972554, 536163058, 539352300, 542540273, 545726969,
	548912382, 552096502, 555279324, 558460839, 561641039, 564819919,
	567997469, 571173682, 574348552, 577522070, 580694229, 583865021,
	587034440, 590202477, 593369126, 596534378, 599698227, 602860664,
	606021683, 609181276, 612339436, 615496154, 618651424, 621805239,
	624957590, 628108471, 631257873, 634405791, 637552215, 640697139,
	643840556, 646982457, 650122837, 653261686, 656398998, 659534766,
	662668981, 665801638, 668932727, 672062243, 675190177, 678316522,
	681441272, 684564417, 687685952, 690805869, 693924160, 697040818,
	700155836, 703269207, 706380923, 709490976, 712599360, 715706067,
	718811090, 721914422, 725016055, 728115982, 731214195, 734310688,
	737405453, 740498483, 743589770, 746679308, 749767089, 752853105,
	755937350, 759019816, 762100496, 765179382, 768256469, 771331747,
	774405210, 777476851, 780546663, 783614638, 786680769, 789745049,
	792807470, 795868026, 798926709, 801983513, 805038429, 808091450,
	811142571, 814191782, 817239078, 820284450, 823327893, 826369398,
	829408958, 832446567, 835482217, 838515901, 841547612, 844577343,
	847605086, 850630835, 853654582, 856676321, 859696043, 862713743,
	865729413, 868743045, 871754633, 874764170, 877771649, 880777062,
	883780402, 886781663, 889780838, 892777918, 895772898, 898765769,
	901756526, 904745161, 907731667, 910716038, 913698265, 916678342,
	919656262, 922632018, 925605603, 928577010, 931546231, 934513261,
	937478092, 940440717, 943401129, 946359321, 949315286, 952269017,
	955220508, 958169751, 961116739, 964061465, 967003923, 969944106,
	972882006, 975817617, 978750932, 981681943, 984610645, 987537030,
	990461091, 993382821, 996302214, 999219262, 1002133959, 1005046298,
	1007956272, 1010863875, 1013769098, 1016671936, 1019572382, 1022470428,
	1025366069, 1028259297, 1031150105, 1034038487, 1036924436, 1039807944,
	1042689006, 1045567615, 1048443763, 1051317443, 1054188651, 1057057377,
	1059923616, 1062787361, 1065648605, 1068507342, 1071363564, 1074217266,
	1077068439, 1079917078, 1082763176, 1085606726, 1088447722, 1091286156,
	1094122023, 1096955314, 1099786025, 1102614148, 1105439676, 1108262603,
	1111082922, 1113900627, 1116715710, 1119528166, 1122337987, 1125145168,
	1127949701, 1130751579, 1133550797, 1136347348, 1139141224, 1141932420,
	1144720929, 1147506745, 1150289860, 1153070269, 1155847964, 1158622939,
	1161395188, 1164164704, 1166931481, 1169695512, 1172456790, 1175215310,
	1177971064, 1180724046, 1183474250, 1186221669, 1188966297, 1191708127,
	1194447153, 1197183368, 1199916766, 1202647340, 1205375085, 1208099993,
	1210822059, 1213541275, 1216257636, 1218971135, 1221681765, 1224389521,
	1227094395, 1229796382, 1232495475, 1235191668, 1237884955, 1240575329,
	1243262783, 1245947312, 1248628909, 1251307568, 1253983283, 1256656047,
	1259325853, 1261992697, 1264656571, 1267317469, 1269975384, 1272630312,
	1275282245, 1277931177, 1280577102, 1283220013, 1285859905, 1288496772,
	1291130606, 1293761402, 1296389154, 1299013855, 1301635500, 1304254082,
	1306869594, 1309482032, 1312091388, 1314697657, 1317300832, 1319900907,
	1322497877, 1325091734, 1327682474, 1330270089, 1332854574, 1335435923,
	1338014129, 1340589187, 1343161090, 1345729833, 1348295409, 1350857812,
	1353417037, 1355973077, 1358525926, 1361075579, 1363622028, 1366165269,
	1368705296, 1371242101, 1373775680, 1376306026, 1378833134, 1381356997,
	1383877610, 1386394966, 1388909060, 1391419886, 1393927438, 1396431709,
	1398932695, 1401430389, 1403924785, 1406415878, 1408903661, 1411388129,
	1413869275, 1416347095, 1418821582, 1421292730, 1423760534, 1426224988,
	1428686085, 1431143821, 1433598189, 1436049184, 1438496799, 1440941030,
	1443381870, 1445819314, 1448253355, 1450683988, 1453111208, 1455535009,
	1457955385, 1460372329, 1462785838, 1465195904, 1467602523, 1470005688,
	1472405394, 1474801636, 1477194407, 1479583702, 1481969516, 1484351842,
	1486730675, 1489106011, 1491477842, 1493846163, 1496210969, 1498572255,
	1500930014, 1503284242, 1505634932, 1507982079, 1510325678, 1512665723,
	1515002208, 1517335128, 1519664478, 1521990252, 1524312445, 1526631051,
	1528946064, 1531257480, 1533565293, 1535869497, 1538170087, 1540467057,
	1542760402, 1545050118, 1547336197, 1549618636, 1551897428, 1554172569,
	1556444052, 1558711873, 1560976026, 1563236506, 1565493307, 1567746425,
	1569995854, 1572241588, 1574483623, 1576721952, 1578956572, 1581187476,
	1583414660, 1585638117, 1587857843, 1590073833, 1592286082, 1594494583,
	1596699333, 1598900325, 1601097555, 1603291018, 1605480708, 1607666620,
	1609848749, 1612027089, 1614201637, 1616372386, 1618539332, 1620702469,
	1622861793, 1625017297, 1627168978, 1629316830, 1631460848, 1633601027,
	1635737362, 1637869848, 1639998480, 1642123253, 1644244162, 1646361202,
	1648474367, 1650583654, 1652689057, 1654790570, 1656888190, 1658981911,
	1661071729, 1663157637, 1665239632, 1667317709, 1669391862, 1671462087,
	1673528379, 1675590733, 1677649144, 1679703608, 1681754118, 1683800672,
	1685843263, 1687881888, 1689916541, 1691947217, 1693973912, 1695996621,
	1698015339, 1700030061, 1702040783, 1704047500, 1706050207, 1708048900,
	1710043573, 1712034223, 1714020844, 1716003431, 1717981981, 1719956488,
	1721926948, 1723893357, 1725855708, 1727813999, 1729768224, 1731718378,
	1733664458, 1735606458, 1737544374, 1739478202, 1741407936, 1743333573,
	1745255107, 1747172535, 1749085851, 1750995052, 1752900132, 1754801087,
	1756697914, 1758590607, 1760479161, 1762363573, 1764243838, 1766119952,
	1767991909, 1769859707, 1771723340, 1773582803, 1775438094, 1777289206,
	1779136137, 1780978881, 1782817434, 1784651792, 1786481950, 1788307905,
	1790129652, 1791947186, 1793760504, 1795569601, 1797374472, 1799175115,
	1800971523, 1802763694, 1804551623, 1806335305, 1808114737, 1809889915,
	1811660833, 1813427489, 1815189877, 1816947994, 1818701835, 1820451397,
	1822196675, 1823937666, 1825674364, 1827406767, 1829134869, 1830858668,
	1832578158, 1834293336, 1836004197, 1837710739, 1839412956, 1841110844,
	1842804401, 1844493621, 1846178501, 1847859036, 1849535224, 1851207059,
	1852874538, 1854537657, 1856196413, 1857850800, 1859500816, 1861146456,
	1862787717, 1864424594, 1866057085, 1867685184, 1869308888, 1870928194,
	1872543097, 1874153594, 1875759681, 1877361354, 1878958610, 1880551444,
	1882139853, 1883723833, 1885303381, 1886878492, 1888449163, 1890015391,
	1891577171, 1893134500, 1894687374, 1896235790, 1897779744, 1899319232,
	1900854251, 1902384797, 1903910867, 1905432457, 1906949562, 1908462181,
	1909970309, 1911473942, 1912973078, 1914467712, 1915957841, 1917443462,
	1918924571, 1920401165, 1921873239, 1923340791, 1924803818, 1926262315,
	1927716279, 1929165708, 1930610597, 1932050943, 1933486742, 1934917992,
	1936344689, 1937766830, 1939184411, 1940597428, 1942005880, 1943409761,
	1944809070, 1946203802, 1947593954, 1948979524, 1950360508, 1951736902,
	1953108703, 1954475909, 1955838516, 1957196520, 1958549919, 1959898709,
	1961242888, 1962582451, 1963917396, 1965247720, 1966573420, 1967894492,
	1969210933, 1970522741, 1971829912, 1973132443, 1974430331, 1975723572,
	1977012165, 1978296106, 1979575392, 1980850019, 1982119985, 1983385288,
	1984645923, 1985901888, 1987153180, 1988399796, 1989641733, 1990878989,
	1992111559, 1993339442, 1994562635, 1995781134, 1996994937, 1998204040,
	1999408442, 2000608139, 2001803128, 2002993407, 2004178973, 2005359822,
	2006535953, 2007707362, 2008874047, 2010036005, 2011193233, 2012345729,
	2013493489, 2014636511, 2015774793, 2016908331, 2018037123, 2019161167,
	2020280460, 2021394998, 2022504780, 2023609803, 2024710064, 2025805561,
	2026896291, 2027982251, 2029063439, 2030139853, 2031211490, 2032278347,
	2033340422, 2034397712, 2035450215, 2036497928, 2037540850, 2038578976,
	2039612306, 2040640837, 2041664565, 2042683490, 2043697608, 2044706916,
	2045711414, 2046711097, 2047705965, 2048696014, 2049681242, 2050661647,
	2051637227, 2052607979, 2053573901, 2054534991, 2055491246, 2056442665,
	2057389244, 2058330983, 2059267877, 2060199927, 2061127128, 2062049479,
	2062966978, 2063879623, 2064787411, 2065690341, 2066588410, 2067481616,
	2068369957, 2069253430, 2070132035, 2071005769, 2071874629, 2072738614,
	2073597721, 2074451950, 2075301296, 2076145760, 2076985338, 2077820028,
	2078649830, 2079474740, 2080294757, 2081109879, 2081920103, 2082725429,
	2083525854, 2084321376, 2085111994, 2085897705, 2086678508, 2087454400,
	2088225381, 2088991448, 2089752599, 2090508833, 2091260147, 2092006541,
	2092748012, 2093484559, 2094216179, 2094942872, 2095664635, 2096381466,
	2097093365, 2097800329, 2098502357, 2099199446, 2099891596, 2100578805,
	2101261071, 2101938393, 2102610768, 2103278196, 2103940674, 2104598202,
	2105250778, 2105898399, 2106541065, 2107178775, 2107811526, 2108439317,
	2109062146, 2109680013, 2110292916, 2110900853, 2111503822, 2112101824,
	2112694855, 2113282914, 2113866001, 2114444114, 2115017252, 2115585412,
	2116148595, 2116706797, 2117260020, 2117808259, 2118351516, 2118889788,
	2119423074, 2119951372, 2120474683, 2120993003, 2121506333, 2122014670,
	2122518015, 2123016364, 2123509718, 2123998076, 2124481435, 2124959795,
	2125433155, 2125901514, 2126364870, 2126823222, 2127276570, 2127724913,
	2128168248, 2128606576, 2129039895, 2129468204, 2129891502, 2130309789,
	2130723062, 2131131322, 2131534567, 2131932796, 2132326009, 2132714204,
	2133097381, 2133475538, 2133848675, 2134216791, 2134579885, 2134937956,
	2135291003, 2135639026, 2135982023, 2136319994, 2136652938, 2136980855,
	2137303743, 2137621601, 2137934430, 2138242228, 2138544994, 2138842728,
	2139135429, 2139423097, 2139705730, 2139983329, 2140255892, 2140523418,
	2140785908, 2141043360, 2141295774, 2141543150, 2141785486, 2142022783,
	2142255039, 2142482254, 2142704427, 2142921559, 2143133648, 2143340694,
	2143542697, 2143739656, 2143931570, 2144118439, 2144300264, 2144477042,
	2144648774, 2144815460, 2144977098, 2145133690, 2145285233, 2145431729,
	2145573176, 2145709574, 2145840924, 2145967224, 2146088474, 2146204674,
	2146315824, 2146421924, 2146522973, 2146618971, 2146709917, 2146795813,
	2146876656, 2146952448, 2147023188, 2147088876, 2147149511, 2147205094,
	2147255625, 2147301102, 2147341527, 2147376899, 2147407218, 2147432484,
	2147452697, 2147467857, 2147477963, 2147483016,
}

var sineWindow2048 = [2048]int32{
	823550, 2470648, 4117746, 5764841, 7411932, 9059019,
	10706101, 12353177, 14000245, 15647305, 17294356, 18941397,
	20588426, 22235444, 23882448, 25529438, 27176413, 28823373,
	30470315, 32117239, 33764145, 35411031, 37057895, 38704738,
	40351559, 41998355, 43645127, 45291873, 46938593, 48585284,
	50231948, 51878581, 53525185, 55171756, 56818296, 58464802,
	60111273, 61757709, 63404109, 65050471, 66696795, 68343080,
	69989325, 71635529, 73281690, 74927809, 76573883, 78219912,
	79865895, 81511831, 83157720, 84803559, 86449348, 88095087,
	89740774, 91386408, 93031988, 94677513, 96322983, 97968396,
	99613752, 101259049, 102904286, 104549463, 106194578, 107839631,
	109484620, 111129545, 112774405, 114419198, 116063924, 117708582,
	119353170, 120997688, 122642135, 124286510, 125930812, 127575040,
	129219192, 130863269, 132507269, 134151190, 135795033, 137438796,
	139082478, 140726078, 142369596, 144013029, 145656378, 147299642,
	148942818, 150585907, 152228908, 153871818, 155514639, 157157368,
	158800004, 160442547, 162084996, 163727349, 165369606, 167011765,
	168653827, 170295789, 171937651, 173579412, 175221071, 176862626,
	178504078, 180145425, 181786665, 183427799, 185068825, 186709742,
	188350549, 189991245, 191631829, 193272301, 194912659, 196552903,
	198193031, 199833042, 201472935, 203112711, 204752366, 206391901,
	208031315, 209670607, 211309775, 212948818, 214587737, 216226529,
	217865194, 219503731, 221142139, 222780416, 224418563, 226056578,
	227694459, 229332207, 230969820, 232607296, 234244636, 235881839,
	237518902, 239155826, 240792609, 242429250, 244065749, 245702104,
	247338315, 248974380, 250610299, 252246070, 253881693, 255517166,
	257152490, 258787662, 260422681, 262057548, 263692260, 265326817,
	266961219, 268595463, 270229549, 271863476, 273497243, 275130849,
	276764294, 278397575, 280030693, 281663646, 283296434, 284929054,
	286561508, 288193792, 289825907, 291457852, 293089625, 294721225,
	296352653, 297983906, 299614983, 301245885, 302876609, 304507155,
	306137522, 307767708, 309397714, 311027538, 312657179, 314286635,
	315915907, 317544993, 319173893, 320802604, 322431127, 324059460,
	325687603, 327315554, 328943312, 330570877, 332198247, 333825422,
	335452401, 337079182, 338705765, 340332148, 341958332, 343584314,
	345210094, 346835671, 348461044, 350086213, 351711175, 353335930,
	354960477, 356584816, 358208945, 359832863, 361456569, 363080063,
	364703343, 366326408, 367949259, 369571892, 371194308, 372816506,
	374438485, 376060243, 377681780, 379303095, 380924187, 382545055,
	384165697, 385786114, 387406303, 389026265, 390645998, 392265501,
	393884774, 395503814, 397122622, 398741197, 400359536, 401977641,
	403595508, 405213139, 406830531, 408447683, 410064596, 411681267,
	413297696, 414913882, 416529824, 418145520, 419760971, 421376175,
	422991131, 424605838, 426220295, 427834502, 429448457, 431062159,
	432675607, 434288802, 435901740, 437514422, 439126847, 440739014,
	442350921, 443962568, 445573954, 447185078, 448795938, 450406535,
	452016867, 453626932, 455236731, 456846262, 458455525, 460064517,
	461673239, 463281690, 464889868, 466497772, 468105402, 469712757,
	471319835, 472926636, 474533159, 476139403, 477745366, 479351049,
	480956449, 482561567, 484166400, 485770949, 487375212, 488979189,
	490582878, 492186278, 493789388, 495392208, 496994737, 498596973,
	500198916, 501800565, 503401919, 505002976, 506603737, 508204199,
	509804362, 511404226, 513003788, 514603049, 516202007, 517800662,
	519399012, 520997056, 522594794, 524192224, 525789346, 527386159,
	528982661, 530578852, 532174731, 533770298, 535365550, 536960487,
	538555108, 540149412, 541743399, 543337067, 544930415, 546523443,
	548116149, 549708533, 551300594, 552892330, 554483741, 556074825,
	557665583, 559256012, 560846113, 562435883, 564025323, 565614431,
	567203206, 568791648, 570379754, 571967526, 573554961, 575142058,
	576728817, 578315237, 579901317, 581487055, 583072452, 584657505,
	586242215, 587826579, 589410598, 590994270, 592577595, 594160570,
	595743197, 597325472, 598907397, 600488969, 602070188, 603651052,
	605231562, 606811716, 608391512, 609970951, 611550031, 613128751,
	614707110, 616285108, 617862743, 619440015, 621016922, 622593464,
	624169640, 625745448, 627320889, 628895960, 630470662, 632044992,
	633618951, 635192537, 636765749, 638338587, 639911049, 641483135,
	643054843, 644626174, 646197124, 647767695, 649337885, 650907693,
	652477117, 654046158, 655614815, 657183085, 658750969, 660318465,
	661885573, 663452292, 665018620, 666584557, 668150102, 669715254,
	671280012, 672844375, 674408342, 675971913, 677535085, 679097860,
	680660234, 682222209, 683783782, 685344952, 686905720, 688466083,
	690026042, 691585594, 693144740, 694703478, 696261807, 697819727,
	699377236, 700934334, 702491019, 704047291, 705603149, 707158592,
	708713619, 710268229, 711822421, 713376195, 714929548, 716482481,
	718034993, 719587082, 721138748, 722689990, 724240806, 725791197,
	727341160, 728890696, 730439803, 731988480, 733536727, 735084542,
	736631924, 738178874, 739725389, 741271469, 742817112, 744362319,
	745907088, 747451418, 748995309, 750538758, 752081767, 753624333,
	755166455, 756708133, 758249367, 759790154, 761330494, 762870386,
	764409829, 765948823, 767487366, 769025458, 770563097, 772100283,
	773637015, 775173292, 776709112, 778244476, 779779382, 781313829,
	782847817, 784381344, 785914409, 787447013, 788979153, 790510829,
	792042039, 793572784, 795103062, 796632873, 798162214, 799691087,
	801219488, 802747419, 804274877, 805801862, 807328373, 808854409,
	810379969, 811905053, 813429659, 814953786, 816477434, 818000602,
	819523288, 821045492, 822567214, 824088451, 825609204, 827129471,
	828649251, 830168544, 831687348, 833205664, 834723489, 836240823,
	837757665, 839274014, 840789870, 842305231, 843820096, 845334465,
	846848337, 848361711, 849874585, 851386960, 852898834, 854410206,
	855921075, 857431441, 858941302, 860450658, 861959508, 863467851,
	864975686, 866483012, 867989828, 869496134, 871001928, 872507210,
	874011979, 875516233, 877019973, 878523196, 880025903, 881528092,
	883029762, 884530913, 886031543, 887531653, 889031240, 890530304,
	892028845, 893526860, 895024350, 896521313, 898017749, 899513657,
	901009036, 902503884, 903998202, 905491988, 906985241, 908477961,
	909970146, 911461795, 912952909, 914443486, 915933524, 917423024,
	918911984, 920400404, 921888282, 923375618, 924862410, 926348659,
	927834362, 929319520, 930804131, 932288195, 933771710, 935254675,
	936737091, 938218955, 939700268, 941181028, 942661234, 944140885,
	945619981, 947098521, 948576504, 950053929, 951530794, 953007100,
	954482846, 955958030, 957432651, 958906709, 960380204, 961853133,
	963325496, 964797293, 966268522, 967739183, 969209274, 970678795,
	972147745, 973616124, 975083929, 976551161, 978017819, 979483901,
	980949407, 982414336, 983878686, 985342459, 986805651, 988268263,
	989730294, 991191742, 992652607, 994112889, 995572585, 997031696,
	998490220, 999948157, 1001405506, 1002862265, 1004318435, 1005774014,
	1007229001, 1008683395, 1010137197, 1011590404, 1013043016, 1014495031,
	1015946451, 1017397272, 1018847495, 1020297119, 1021746142, 1023194564,
	1024642385, 1026089602, 1027536217, 1028982226, 1030427630, 1031872428,
	1033316619, 1034760203, 1036203177, 1037645542, 1039087296, 1040528439,
	1041968970, 1043408889, 1044848193, 1046286882, 1047724957, 1049162414,
	1050599255, 1052035477, 1053471081, 1054906065, 1056340428, 1057774170,
	1059207290, 1060639786, 1062071659, 1063502907, 1064933529, 1066363525,
	1067792893, 1069221634, 1070649745, 1072077226, 1073504077, 1074930296,
	1076355883, 1077780837, 1079205156, 1080628841, 1082051890, 1083474303,
	1084896078, 1086317215, 1087737713, 1089157571, 1090576788, 1091995364,
	1093413297, 1094830587, 1096247233, 1097663234, 1099078590, 1100493299,
	1101907360, 1103320773, 1104733537, 1106145652, 1107557115, 1108967927,
	1110378087, 1111787593, 1113196446, 1114604643, 1116012185, 1117419071,
	1118825299, 1120230868, 1121635779, 1123040030, 1124443621, 1125846549,
	1127248816, 1128650419, 1130051359, 1131451633, 1132851242, 1134250185,
	1135648460, 1137046068, 1138443006, 1139839275, 1141234873, 1142629800,
	1144024054, 1145417636, 1146810544, 1148202777, 1149594335, 1150985216,
	1152375421, 1153764947, 1155153795, 1156541963, 1157929451, 1159316257,
	1160702382, 1162087824, 1163472582, 1164856655, 1166240044, 1167622746,
	1169004762, 1170386090, 1171766729, 1173146679, 1174525939, 1175904508,
	1177282385, 1178659570, 1180036061, 1181411858, 1182786960, 1184161366,
	1185535076, 1186908088, 1188280402, 1189652017, 1191022932, 1192393146,
	1193762659, 1195131470, 1196499578, 1197866982, 1199233681, 1200599675,
	1201964962, 1203329542, 1204693415, 1206056578, 1207419033, 1208780776,
	1210141809, 1211502130, 1212861738, 1214220633, 1215578814, 1216936279,
	1218293029, 1219649061, 1221004377, 1222358974, 1223712852, 1225066010,
	1226418447, 1227770163, 1229121156, 1230471427, 1231820974, 1233169796,
	1234517892, 1235865263, 1237211906, 1238557822, 1239903009, 1241247466,
	1242591194, 1243934190, 1245276454, 1246617986, 1247958785, 1249298850,
	1250638179, 1251976773, 1253314630, 1254651751, 1255988133, 1257323776,
	1258658679, 1259992842, 1261326264, 1262658944, 1263990881, 1265322074,
	1266652523, 1267982227, 1269311185, 1270639397, 1271966861, 1273293576,
	1274619543, 1275944759, 1277269225, 1278592940, 1279915903, 1281238112,
	1282559568, 1283880270, 1285200216, 1286519406, 1287837839, 1289155515,
	1290472432, 1291788590, 1293103988, 1294418626, 1295732502, 1297045616,
	1298357966, 1299669553, 1300980376, 1302290433, 1303599724, 1304908248,
	1306216004, 1307522992, 1308829211, 1310134660, 1311439338, 1312743245,
	1314046379, 1315348741, 1316650328, 1317951141, 1319251179, 1320550441,
	1321848926, 1323146633, 1324443562, 1325739712, 1327035081, 1328329671,
	1329623478, 1330916504, 1332208746, 1333500205, 1334790880, 1336080769,
	1337369872, 1338658189, 1339945718, 1341232459, 1342518410, 1343803572,
	1345087944, 1346371524, 1347654312, 1348936307, 1350217509, 1351497917,
	1352777529, 1354056346, 1355334366, 1356611589, 1357888013, 1359163639,
	1360438465, 1361712491, 1362985716, 1364258140, 1365529760, 1366800578,
	1368070591, 1369339799, 1370608202, 1371875799, 1373142588, 1374408570,
	1375673743, 1376938107, 1378201661, 1379464404, 1380726336, 1381987456,
	1383247762, 1384507255, 1385765933, 1387023796, 1388280843, 1389537074,
	1390792487, 1392047081, 1393300857, 1394553813, 1395805949, 1397057264,
	1398307757, 1399557427, 1400806274, 1402054297, 1403301495, 1404547868,
	1405793414, 1407038134, 1408282026, 1409525089, 1410767323, 1412008727,
	1413249300, 1414489042, 1415727952, 1416966029, 1418203273, 1419439682,
	1420675256, 1421909995, 1423143897, 1424376962, 1425609189, 1426840577,
	1428071126, 1429300835, 1430529703, 1431757729, 1432984913, 1434211254,
	1435436752, 1436661405, 1437885213, 1439108175, 1440330290, 1441551558,
	1442771978, 1443991550, 1445210271, 1446428143, 1447645164, 1448861333,
	1450076650, 1451291114, 1452504724, 1453717479, 1454929380, 1456140424,
	1457350612, 1458559943, 1459768415, 1460976029, 1462182783, 1463388677,
	1464593711, 1465797882, 1467001192, 1468203638, 1469405221, 1470605939,
	1471805792, 1473004780, 1474202901, 1475400154, 1476596540, 1477792057,
	1478986705, 1480180482, 1481373389, 1482565424, 1483756588, 1484946878,
	1486136295, 1487324837, 1488512505, 1489699297, 1490885213, 1492070251,
	1493254412, 1494437694, 1495620098, 1496801621, 1497982264, 1499162026,
	1500340905, 1501518902, 1502696016, 1503872246, 1505047591, 1506222051,
	1507395625, 1508568312, 1509740111, 1510911022, 1512081045, 1513250178,
	1514418421, 1515585772, 1516752233, 1517917801, 1519082476, 1520246257,
	1521409144, 1522571137, 1523732233, 1524892433, 1526051736, 1527210141,
	1528367648, 1529524256, 1530679964, 1531834771, 1532988678, 1534141682,
	1535293784, 1536444983, 1537595278, 1538744669, 1539893154, 1541040733,
	1542187406, 1543333172, 1544478030, 1545621979, 1546765019, 1547907149,
	1549048368, 1550188676, 1551328072, 1552466556, 1553604126, 1554740783,
	1555876524, 1557011351, 1558145261, 1559278255, 1560410332, 1561541490,
	1562671730, 1563801051, 1564929452, 1566056932, 1567183491, 1568309128,
	1569433843, 1570557634, 1571680501, 1572802444, 1573923461, 1575043553,
	1576162718, 1577280955, 1578398265, 1579514647, 1580630099, 1581744621,
	1582858213, 1583970873, 1585082602, 1586193399, 1587303262, 1588412191,
	1589520187, 1590627247, 1591733371, 1592838559, 1593942810, 1595046123,
	1596148498, 1597249934, 1598350430, 1599449986, 1600548601, 1601646274,
	1602743006, 1603838794, 1604933639, 1606027540, 1607120496, 1608212507,
	1609303571, 1610393689, 1611482860, 1612571082, 1613658356, 1614744681,
	1615830055, 1616914479, 1617997952, 1619080473, 1620162042, 1621242658,
	1622322319, 1623401027, 1624478779, 1625555576, 1626631417, 1627706300,
	1628780226, 1629853194, 1630925203, 1631996253, 1633066343, 1634135472,
	1635203639, 1636270845, 1637337088, 1638402368, 1639466684, 1640530036,
	1641592422, 1642653843, 1643714297, 1644773785, 1645832305, 1646889857,
	1647946439, 1649002053, 1650056696, 1651110369, 1652163070, 1653214800,
	1654265557, 1655315341, 1656364151, 1657411986, 1658458847, 1659504732,
	1660549641, 1661593572, 1662636527, 1663678503, 1664719501, 1665759519,
	1666798557, 1667836615, 1668873692, 1669909787, 1670944900, 1671979029,
	1673012175, 1674044337, 1675075514, 1676105706, 1677134911, 1678163130,
	1679190362, 1680216606, 1681241862, 1682266128, 1683289405, 1684311692,
	1685332987, 1686353292, 1687372604, 1688390924, 1689408250, 1690424583,
	1691439921, 1692454264, 1693467612, 1694479963, 1695491317, 1696501674,
	1697511033, 1698519394, 1699526755, 1700533117, 1701538478, 1702542838,
	1703546196, 1704548553, 1705549906, 1706550257, 1707549603, 1708547945,
	1709545282, 1710541613, 1711536938, 1712531256, 1713524566, 1714516869,
	1715508163, 1716498448, 1717487723, 1718475987, 1719463241, 1720449483,
	1721434713, 1722418931, 1723402135, 1724384325, 1725365501, 1726345662,
	1727324807, 1728302936, 1729280049, 1730256144, 1731231221, 1732205280,
	1733178320, 1734150340, 1735121341, 1736091320, 1737060278, 1738028214,
	1738995128, 1739961019, 1740925886, 1741889729, 1742852548, 1743814341,
	1744775108, 1745734849, 1746693563, 1747651249, 1748607908, 1749563537,
	1750518137, 1751471708, 1752424248, 1753375758, 1754326236, 1755275681,
	1756224095, 1757171475, 1758117821, 1759063133, 1760007411, 1760950653,
	1761892859, 1762834028, 1763774161, 1764713256, 1765651313, 1766588331,
	1767524310, 1768459249, 1769393148, 1770326006, 1771257822, 1772188597,
	1773118328, 1774047017, 1774974663, 1775901264, 1776826820, 1777751331,
	1778674796, 1779597215, 1780518587, 1781438912, 1782358189, 1783276417,
	1784193596, 1785109725, 1786024805, 1786938833, 1787851811, 1788763736,
	1789674610, 1790584430, 1791493198, 1792400911, 1793307570, 1794213174,
	1795117722, 1796021215, 1796923651, 1797825030, 1798725351, 1799624614,
	1800522818, 1801419964, 1802316049, 1803211074, 1804105039, 1804997942,
	1805889783, 1806780562, 1807670278, 1808558931, 1809446519, 1810333044,
	1811218503, 1812102897, 1812986225, 1813868486, 1814749680, 1815629807,
	1816508865, 1817386855, 1818263776, 1819139627, 1820014408, 1820888118,
	1821760758, 1822632325, 1823502820, 1824372243, 1825240592, 1826107868,
	1826974069, 1827839196, 1828703247, 1829566223, 1830428122, 1831288944,
	1832148689, 1833007357, 1833864946, 1834721456, 1835576887, 1836431238,
	1837284509, 1838136698, 1838987807, 1839837834, 1840686778, 1841534640,
	1842381418, 1843227113, 1844071723, 1844915248, 1845757688, 1846599042,
	1847439310, 1848278491, 1849116585, 1849953591, 1850789508, 1851624337,
	1852458077, 1853290727, 1854122287, 1854952756, 1855782133, 1856610419,
	1857437613, 1858263714, 1859088722, 1859912636, 1860735457, 1861557182,
	1862377813, 1863197347, 1864015786, 1864833128, 1865649374, 1866464521,
	1867278571, 1868091522, 1868903374, 1869714127, 1870523780, 1871332333,
	1872139784, 1872946135, 1873751383, 1874555530, 1875358573, 1876160513,
	1876961350, 1877761083, 1878559710, 1879357233, 1880153650, 1880948961,
	1881743166, 1882536263, 1883328253, 1884119136, 1884908909, 1885697574,
	1886485130, 1887271576, 1888056912, 1888841137, 1889624250, 1890406253,
	1891187143, 1891966920, 1892745585, 1893523136, 1894299573, 1895074896,
	1895849104, 1896622197, 1897394174, 1898165035, 1898934779, 1899703406,
	1900470916, 1901237307, 1902002580, 1902766735, 1903529769, 1904291685,
	1905052479, 1905812153, 1906570706, 1907328138, 1908084447, 1908839634,
	1909593698, 1910346639, 1911098455, 1911849148, 1912598716, 1913347159,
	1914094476, 1914840667, 1915585732, 1916329669, 1917072480, 1917814163,
	1918554717, 1919294143, 1920032440, 1920769607, 1921505644, 1922240551,
	1922974327, 1923706972, 1924438486, 1925168867, 1925898115, 1926626231,
	1927353213, 1928079062, 1928803776, 1929527356, 1930249800, 1930971109,
	1931691282, 1932410319, 1933128219, 1933844982, 1934560607, 1935275094,
	1935988442, 1936700652, 1937411722, 1938121653, 1938830443, 1939538093,
	1940244602, 1940949969, 1941654195, 1942357279, 1943059219, 1943760017,
	1944459671, 1945158182, 1945855548, 1946551769, 1947246846, 1947940777,
	1948633562, 1949325200, 1950015692, 1950705037, 1951393234, 1952080283,
	1952766184, 1953450936, 1954134539, 1954816992, 1955498296, 1956178449,
	1956857451, 1957535302, 1958212001, 1958887549, 1959561944, 1960235186,
	1960907276, 1961578211, 1962247993, 1962916621, 1963584093, 1964250411,
	1964915573, 1965579579, 1966242429, 1966904122, 1967564658, 1968224037,
	1968882257, 1969539320, 1970195224, 1970849968, 1971503554, 1972155980,
	1972807245, 1973457350, 1974106294, 1974754077, 1975400698, 1976046157,
	1976690453, 1977333587, 1977975557, 1978616364, 1979256007, 1979894485,
	1980531799, 1981167948, 1981802931, 1982436748, 1983069400, 1983700884,
	1984331202, 1984960352, 1985588335, 1986215149, 1986840795, 1987465272,
	1988088580, 1988710719, 1989331688, 1989951486, 1990570114, 1991187570,
	1991803856, 1992418969, 1993032911, 1993645680, 1994257276, 1994867700,
	1995476949, 1996085025, 1996691926, 1997297653, 1997902205, 1998505582,
	1999107782, 1999708807, 2000308656, 2000907328, 2001504822, 2002101140,
	2002696279, 2003290240, 2003883023, 2004474627, 2005065052, 2005654297,
	2006242363, 2006829248, 2007414953, 2007999477, 2008582819, 2009164980,
	2009745959, 2010325756, 2010904370, 2011481801, 2012058048, 2012633113,
	2013206993, 2013779689, 2014351200, 2014921526, 2015490667, 2016058622,
	2016625391, 2017190974, 2017755370, 2018318580, 2018880602, 2019441436,
	2020001082, 2020559540, 2021116809, 2021672890, 2022227781, 2022781482,
	2023333994, 2023885315, 2024435445, 2024984385, 2025532133, 2026078690,
	2026624055, 2027168228, 2027711208, 2028252996, 2028793590, 2029332990,
	2029871197, 2030408210, 2030944029, 2031478652, 2032012081, 2032544314,
	2033075351, 2033605193, 2034133838, 2034661286, 2035187538, 2035712592,
	2036236449, 2036759108, 2037280569, 2037800831, 2038319894, 2038837759,
	2039354424, 2039869889, 2040384154, 2040897219, 2041409084, 2041919747,
	2042429209, 2042937470, 2043444529, 2043950386, 2044455040, 2044958492,
	2045460741, 2045961786, 2046461628, 2046960266, 2047457700, 2047953929,
	2048448953, 2048942773, 2049435387, 2049926796, 2050416998, 2050905995,
	2051393785, 2051880368, 2052365744, 2052849913, 2053332874, 2053814627,
	2054295172, 2054774508, 2055252636, 2055729554, 2056205264, 2056679763,
	2057153053, 2057625133, 2058096002, 2058565661, 2059034108, 2059501344,
	2059967369, 2060432182, 2060895782, 2061358171, 2061819346, 2062279309,
	2062738059, 2063195595, 2063651917, 2064107026, 2064560920, 2065013599,
	2065465064, 2065915314, 2066364348, 2066812167, 2067258770, 2067704157,
	2068148328, 2068591281, 2069033018, 2069473538, 2069912841, 2070350925,
	2070787792, 2071223441, 2071657871, 2072091082, 2072523075, 2072953848,
	2073383402, 2073811736, 2074238850, 2074664744, 2075089417, 2075512870,
	2075935102, 2076356112, 2076775901, 2077194469, 2077611814, 2078027937,
	2078442838, 2078856516, 2079268971, 2079680203, 2080090211, 2080498996,
	2080906557, 2081312894, 2081718006, 2082121894, 2082524557, 2082925995,
	2083326207, 2083725194, 2084122955, 2084519490, 2084914799, 2085308882,
	2085701737, 2086093366, 2086483767, 2086872941, 2087260887, 2087647606,
	2088033096, 2088417358, 2088800392, 2089182196, 2089562772, 2089942118,
	2090320235, 2090697123, 2091072780, 2091447207, 2091820404, 2092192370,
	2092563106, 2092932611, 2093300884, 2093667926, 2094033736, 2094398314,
	2094761661, 2095123775, 2095484656, 2095844305, 2096202721, 2096559904,
	2096915853, 2097270569, 2097624051, 2097976299, 2098327313, 2098677092,
	2099025637, 2099372947, 2099719022, 2100063862, 2100407466, 2100749835,
	2101090968, 2101430865, 2101769526, 2102106950, 2102443138, 2102778089,
	2103111803, 2103444280, 2103775519, 2104105521, 2104434284, 2104761810,
	2105088098, 2105413148, 2105736958, 2106059530, 2106380864, 2106700958,
	2107019812, 2107337427, 2107653803, 2107968939, 2108282834, 2108595489,
	2108906904, 2109217078, 2109526012, 2109833704, 2110140156, 2110445366,
	2110749334, 2111052061, 2111353546, 2111653789, 2111952789, 2112250547,
	2112547063, 2112842336, 2113136366, 2113429152, 2113720696, 2114010996,
	2114300052, 2114587865, 2114874434, 2115159758, 2115443839, 2115726675,
	2116008266, 2116288612, 2116567714, 2116845570, 2117122181, 2117397547,
	2117671667, 2117944541, 2118216169, 2118486551, 2118755687, 2119023577,
	2119290220, 2119555616, 2119819765, 2120082668, 2120344323, 2120604731,
	2120863891, 2121121804, 2121378468, 2121633885, 2121888054, 2122140975,
	2122392647, 2122643070, 2122892245, 2123140171, 2123386848, 2123632276,
	2123876455, 2124119384, 2124361064, 2124601494, 2124840674, 2125078604,
	2125315284, 2125550714, 2125784893, 2126017822, 2126249500, 2126479927,
	2126709103, 2126937029, 2127163703, 2127389125, 2127613296, 2127836216,
	2128057884, 2128278300, 2128497464, 2128715375, 2128932035, 2129147442,
	2129361596, 2129574498, 2129786148, 2129996544, 2130205687, 2130413577,
	2130620214, 2130825597, 2131029727, 2131232604, 2131434226, 2131634595,
	2131833709, 2132031570, 2132228176, 2132423528, 2132617626, 2132810469,
	2133002057, 2133192391, 2133381469, 2133569293, 2133755862, 2133941175,
	2134125233, 2134308035, 2134489582, 2134669873, 2134848909, 2135026689,
	2135203212, 2135378480, 2135552491, 2135725246, 2135896745, 2136066987,
	2136235973, 2136403701, 2136570174, 2136735389, 2136899347, 2137062048,
	2137223492, 2137383679, 2137542608, 2137700280, 2137856694, 2138011851,
	2138165750, 2138318391, 2138469774, 2138619899, 2138768766, 2138916375,
	2139062726, 2139207818, 2139351652, 2139494227, 2139635544, 2139775602,
	2139914401, 2140051942, 2140188223, 2140323245, 2140457009, 2140589513,
	2140720758, 2140850743, 2140979469, 2141106936, 2141233143, 2141358091,
	2141481778, 2141604206, 2141725375, 2141845283, 2141963931, 2142081319,
	2142197447, 2142312315, 2142425923, 2142538270, 2142649357, 2142759183,
	2142867749, 2142975054, 2143081099, 2143185883, 2143289406, 2143391668,
	2143492669, 2143592410, 2143690889, 2143788107, 2143884064, 2143978760,
	2144072195, 2144164369, 2144255281, 2144344931, 2144433320, 2144520448,
	2144606314, 2144690919, 2144774261, 2144856343, 2144937162, 2145016719,
	2145095015, 2145172049, 2145247821, 2145322330, 2145395578, 2145467564,
	2145538287, 2145607749, 2145675948, 2145742885, 2145808560, 2145872972,
	2145936122, 2145998010, 2146058635, 2146117997, 2146176098, 2146232935,
	2146288510, 2146342823, 2146395873, 2146447660, 2146498184, 2146547446,
	2146595445, 2146642181, 2146687654, 2146731865, 2146774813, 2146816497,
	2146856919, 2146896078, 2146933974, 2146970607, 2147005977, 2147040084,
	2147072928, 2147104508, 2147134826, 2147163881, 2147191672, 2147218201,
	2147243466, 2147267468, 2147290207, 2147311682, 2147331895, 2147350844,
	2147368530, 2147384953, 2147400112, 2147414008, 2147426641, 2147438011,
	2147448118, 2147456961, 2147464540, 2147470857, 2147475910, 2147479700,
	2147482227, 2147483490,
}

var sineWindow4096 = [4096]int32{
	411775, 1235324, 2058874, 2882423, 3705972, 4529520,
	5353067, 6176614, 7000160, 7823705, 8647248, 9470790,
	10294331, 11117871, 11941409, 12764945, 13588479, 14412011,
	15235541, 16059069, 16882594, 17706117, 18529638, 19353155,
	20176670, 21000182, 21823690, 22647196, 23470698, 24294197,
	25117692, 25941183, 26764671, 27588155, 28411635, 29235110,
	30058581, 30882048, 31705510, 32528968, 33352420, 34175868,
	34999311, 35822749, 36646181, 37469608, 38293030, 39116446,
	39939856, 40763260, 41586658, 42410051, 43233436, 44056816,
	44880189, 45703556, 46526915, 47350268, 48173614, 48996953,
	49820285, 50643609, 51466926, 52290235, 53113537, 53936831,
	54760116, 55583394, 56406664, 57229925, 58053178, 58876423,
	59699658, 60522885, 61346103, 62169312, 62992512, 63815703,
	64638884, 65462056, 66285218, 67108370, 67931513, 68754645,
	69577768, 70400880, 71223982, 72047073, 72870154, 73693224,
	74516283, 75339331, 76162368, 76985394, 77808409, 78631412,
	79454404, 80277384, 81100352, 81923308, 82746252, 83569184,
	84392104, 85215011, 86037906, 86860788, 87683657, 88506514,
	89329357, 90152187, 90975004, 91797808, 92620598, 93443375,
	94266137, 95088886, 95911621, 96734342, 97557048, 98379741,
	99202418, 100025082, 100847730, 101670364, 102492982, 103315586,
	104138174, 104960747, 105783305, 106605847, 107428374, 108250884,
	109073379, 109895858, 110718320, 111540766, 112363196, 113185609,
	114008006, 114830386, 115652749, 116475095, 117297424, 118119735,
	118942030, 119764306, 120586565, 121408807, 122231030, 123053236,
	123875423, 124697593, 125519744, 126341876, 127163990, 127986085,
	128808161, 129630219, 130452257, 131274276, 132096276, 132918256,
	133740217, 134562158, 135384080, 136205981, 137027863, 137849724,
	138671565, 139493386, 140315186, 141136965, 141958724, 142780462,
	143602179, 144423875, 145245549, 146067202, 146888834, 147710444,
	148532032, 149353599, 150175143, 150996666, 151818166, 152639644,
	153461099, 154282532, 155103942, 155925330, 156746694, 157568035,
	158389354, 159210649, 160031920, 160853168, 161674392, 162495593,
	163316769, 164137922, 164959051, 165780155, 166601235, 167422290,
	168243321, 169064327, 169885308, 170706264, 171527195, 172348101,
	173168981, 173989836, 174810666, 175631469, 176452247, 177272999,
	178093725, 178914424, 179735098, 180555745, 181376365, 182196959,
	183017526, 183838065, 184658578, 185479064, 186299523, 187119954,
	187940357, 188760733, 189581081, 190401402, 191221694, 192041958,
	192862194, 193682401, 194502581, 195322731, 196142853, 196962946,
	197783010, 198603044, 199423050, 200243026, 201062973, 201882890,
	202702778, 203522636, 204342464, 205162261, 205982029, 206801766,
	207621473, 208441150, 209260795, 210080410, 210899994, 211719547,
	212539069, 213358560, 214178019, 214997447, 215816843, 216636207,
	217455540, 218274840, 219094109, 219913345, 220732549, 221551720,
	222370859, 223189965, 224009039, 224828079, 225647086, 226466060,
	227285001, 228103909, 228922783, 229741623, 230560429, 231379202,
	232197940, 233016644, 233835314, 234653950, 235472551, 236291118,
	237109649, 237928146, 238746608, 239565035, 240383426, 241201783,
	242020103, 242838388, 243656638, 244474851, 245293029, 246111171,
	246929276, 247747345, 248565378, 249383374, 250201333, 251019255,
	251837141, 252654990, 253472801, 254290575, 255108312, 255926011,
	256743673, 257561297, 258378883, 259196431, 260013941, 260831412,
	261648846, 262466240, 263283597, 264100914, 264918193, 265735432,
	266552633, 267369794, 268186916, 269003999, 269821042, 270638045,
	271455009, 272271933, 273088816, 273905660, 274722463, 275539226,
	276355948, 277172629, 277989270, 278805870, 279622429, 280438947,
	281255423, 282071859, 282888252, 283704604, 284520915, 285337183,
	286153410, 286969595, 287785737, 288601837, 289417894, 290233909,
	291049882, 291865811, 292681698, 293497541, 294313341, 295129098,
	295944812, 296760482, 297576109, 298391691, 299207230, 300022725,
	300838176, 301653582, 302468944, 303284262, 304099535, 304914763,
	305729947, 306545085, 307360179, 308175227, 308990230, 309805187,
	310620099, 311434965, 312249786, 313064560, 313879289, 314693971,
	315508607, 316323196, 317137739, 317952236, 318766685, 319581088,
	320395444, 321209753, 322024014, 322838228, 323652395, 324466514,
	325280585, 326094608, 326908584, 327722511, 328536390, 329350221,
	330164004, 330977738, 331791423, 332605059, 333418647, 334232185,
	335045674, 335859114, 336672505, 337485846, 338299138, 339112379,
	339925571, 340738713, 341551805, 342364846, 343177837, 343990778,
	344803668, 345616508, 346429296, 347242034, 348054720, 348867356,
	349679940, 350492472, 351304953, 352117383, 352929761, 353742086,
	354554360, 355366581, 356178751, 356990868, 357802932, 358614944,
	359426903, 360238809, 361050662, 361862462, 362674209, 363485903,
	364297543, 365109129, 365920662, 366732141, 367543566, 368354937,
	369166254, 369977517, 370788725, 371599878, 372410977, 373222022,
	374033011, 374843945, 375654824, 376465648, 377276417, 378087130,
	378897787, 379708389, 380518935, 381329425, 382139859, 382950236,
	383760558, 384570823, 385381031, 386191183, 387001277, 387811315,
	388621296, 389431220, 390241086, 391050895, 391860647, 392670341,
	393479977, 394289556, 395099076, 395908538, 396717942, 397527288,
	398336575, 399145804, 399954973, 400764085, 401573137, 402382130,
	403191064, 403999938, 404808753, 405617509, 406426205, 407234841,
	408043418, 408851934, 409660390, 410468786, 411277122, 412085397,
	412893611, 413701765, 414509858, 415317890, 416125861, 416933771,
	417741619, 418549406, 419357131, 420164795, 420972397, 421779937,
	422587415, 423394831, 424202184, 425009476, 425816704, 426623870,
	427430974, 428238014, 429044991, 429851906, 430658757, 431465545,
	432272269, 433078930, 433885527, 434692060, 435498530, 436304935,
	437111276, 437917553, 438723765, 439529913, 440335996, 441142015,
	441947969, 442753857, 443559681, 444365439, 445171132, 445976759,
	446782321, 447587817, 448393248, 449198612, 450003911, 450809143,
	451614309, 452419408, 453224441, 454029407, 454834307, 455639139,
	456443905, 457248603, 458053234, 458857798, 459662295, 460466723,
	461271084, 462075378, 462879603, 463683760, 464487849, 465291870,
	466095822, 466899705, 467703520, 468507267, 469310944, 470114552,
	470918091, 471721561, 472524962, 473328293, 474131554, 474934746,
	475737868, 476540920, 477343901, 478146813, 478949654, 479752425,
	480555125, 481357755, 482160314, 482962802, 483765219, 484567564,
	485369839, 486172042, 486974173, 487776233, 488578222, 489380138,
	490181982, 490983755, 491785455, 492587083, 493388638, 494190121,
	494991531, 495792868, 496594132, 497395324, 498196442, 498997487,
	499798458, 500599356, 501400181, 502200931, 503001608, 503802211,
	504602740, 505403194, 506203574, 507003880, 507804111, 508604268,
	509404350, 510204356, 511004288, 511804145, 512603926, 513403632,
	514203262, 515002817, 515802296, 516601699, 517401027, 518200278,
	518999453, 519798551, 520597573, 521396519, 522195388, 522994180,
	523792895, 524591533, 525390094, 526188578, 526986985, 527785313,
	528583565, 529381738, 530179834, 530977851, 531775791, 532573652,
	533371435, 534169140, 534966766, 535764313, 536561782, 537359172,
	538156482, 538953714, 539750866, 540547939, 541344932, 542141846,
	542938680, 543735434, 544532108, 545328702, 546125216, 546921650,
	547718003, 548514276, 549310467, 550106579, 550902609, 551698558,
	552494426, 553290213, 554085918, 554881542, 555677085, 556472545,
	557267924, 558063221, 558858436, 559653568, 560448619, 561243586,
	562038472, 562833274, 563627994, 564422631, 565217185, 566011656,
	566806044, 567600348, 568394569, 569188706, 569982759, 570776729,
	571570615, 572364416, 573158134, 573951767, 574745315, 575538780,
	576332159, 577125454, 577918664, 578711789, 579504829, 580297783,
	581090653, 581883436, 582676135, 583468747, 584261274, 585053715,
	585846070, 586638338, 587430520, 588222616, 589014626, 589806549,
	590598385, 591390134, 592181796, 592973371, 593764859, 594556260,
	595347573, 596138798, 596929936, 597720986, 598511949, 599302823,
	600093609, 600884307, 601674916, 602465437, 603255870, 604046213,
	604836468, 605626634, 606416711, 607206698, 607996596, 608786405,
	609576125, 610365754, 611155294, 611944744, 612734104, 613523374,
	614312554, 615101643, 615890642, 616679551, 617468368, 618257095,
	619045731, 619834276, 620622729, 621411092, 622199363, 622987542,
	623775630, 624563626, 625351531, 626139343, 626927063, 627714691,
	628502227, 629289670, 630077021, 630864279, 631651444, 632438517,
	633225496, 634012382, 634799175, 635585875, 636372481, 637158994,
	637945413, 638731738, 639517969, 640304106, 641090149, 641876098,
	642661952, 643447711, 644233377, 645018947, 645804422, 646589803,
	647375088, 648160278, 648945373, 649730373, 650515277, 651300085,
	652084797, 652869414, 653653934, 654438359, 655222687, 656006918,
	656791054, 657575092, 658359034, 659142880, 659926628, 660710279,
	661493833, 662277290, 663060649, 663843911, 664627075, 665410141,
	666193110, 666975980, 667758753, 668541427, 669324003, 670106481,
	670888860, 671671140, 672453321, 673235404, 674017388, 674799272,
	675581057, 676362743, 677144330, 677925816, 678707204, 679488491,
	680269678, 681050766, 681831753, 682612640, 683393426, 684174112,
	684954698, 685735182, 686515566, 687295849, 688076031, 688856111,
	689636090, 690415968, 691195744, 691975419, 692754992, 693534463,
	694313832, 695093099, 695872263, 696651326, 697430286, 698209143,
	698987897, 699766549, 700545098, 701323544, 702101887, 702880126,
	703658262, 704436295, 705214224, 705992049, 706769770, 707547388,
	708324901, 709102311, 709879616, 710656816, 711433912, 712210904,
	712987790, 713764572, 714541249, 715317821, 716094288, 716870649,
	717646905, 718423055, 719199100, 719975038, 720750871, 721526598,
	722302219, 723077734, 723853142, 724628444, 725403639, 726178728,
	726953710, 727728585, 728503352, 729278013, 730052567, 730827013,
	731601351, 732375582, 733149706, 733923721, 734697629, 735471428,
	736245119, 737018702, 737792177, 738565543, 739338801, 740111950,
	740884989, 741657920, 742430742, 743203455, 743976059, 744748553,
	745520937, 746293212, 747065377, 747837432, 748609377, 749381212,
	750152937, 750924552, 751696056, 752467450, 753238733, 754009905,
	754780966, 755551916, 756322756, 757093483, 757864100, 758634605,
	759404999, 760175281, 760945451, 761715509, 762485455, 763255289,
	764025011, 764794620, 765564117, 766333501, 767102773, 767871932,
	768640977, 769409910, 770178730, 770947436, 771716029, 772484509,
	773252875, 774021127, 774789265, 775557290, 776325200, 777092996,
	777860678, 778628245, 779395698, 780163037, 780930260, 781697369,
	782464363, 783231242, 783998005, 784764653, 785531186, 786297604,
	787063905, 787830091, 788596161, 789362115, 790127953, 790893675,
	791659280, 792424769, 793190142, 793955398, 794720537, 795485559,
	796250464, 797015252, 797779923, 798544477, 799308913, 800073231,
	800837432, 801601515, 802365480, 803129328, 803893057, 804656668,
	805420160, 806183534, 806946790, 807709926, 808472945, 809235844,
	809998624, 810761285, 811523827, 812286249, 813048552, 813810735,
	814572799, 815334743, 816096567, 816858271, 817619855, 818381318,
	819142662, 819903884, 820664986, 821425968, 822186829, 822947568,
	823708187, 824468685, 825229061, 825989316, 826749449, 827509461,
	828269352, 829029120, 829788766, 830548291, 831307693, 832066973,
	832826131, 833585166, 834344079, 835102868, 835861535, 836620080,
	837378501, 838136799, 838894973, 839653025, 840410952, 841168757,
	841926437, 842683994, 843441426, 844198735, 844955920, 845712980,
	846469916, 847226727, 847983414, 848739976, 849496413, 850252726,
	851008913, 851764975, 852520912, 853276724, 854032410, 854787970,
	855543405, 856298714, 857053896, 857808953, 858563884, 859318689,
	860073367, 860827918, 861582343, 862336642, 863090813, 863844857,
	864598775, 865352565, 866106228, 866859764, 867613172, 868366453,
	869119606, 869872631, 870625528, 871378297, 872130938, 872883451,
	873635835, 874388091, 875140218, 875892216, 876644086, 877395827,
	878147439, 878898921, 879650275, 880401499, 881152593, 881903558,
	882654393, 883405098, 884155674, 884906119, 885656435, 886406620,
	887156674, 887906599, 888656392, 889406055, 890155587, 890904988,
	891654259, 892403398, 893152405, 893901282, 894650027, 895398640,
	896147122, 896895472, 897643690, 898391776, 899139730, 899887552,
	900635241, 901382798, 902130222, 902877514, 903624672, 904371698,
	905118591, 905865351, 906611978, 907358471, 908104831, 908851057,
	909597150, 910343108, 911088933, 911834624, 912580181, 913325604,
	914070892, 914816046, 915561065, 916305950, 917050700, 917795315,
	918539795, 919284140, 920028350, 920772424, 921516363, 922260167,
	923003835, 923747367, 924490763, 925234023, 925977148, 926720136,
	927462988, 928205703, 928948282, 929690724, 930433030, 931175198,
	931917230, 932659125, 933400882, 934142503, 934883986, 935625331,
	936366539, 937107609, 937848541, 938589335, 939329992, 940070510,
	940810890, 941551131, 942291234, 943031199, 943771024, 944510711,
	945250260, 945989669, 946728939, 947468069, 948207061, 948945912,
	949684625, 950423197, 951161630, 951899923, 952638076, 953376089,
	954113962, 954851694, 955589286, 956326738, 957064049, 957801219,
	958538248, 959275136, 960011883, 960748489, 961484953, 962221277,
	962957458, 963693498, 964429397, 965165153, 965900768, 966636240,
	967371571, 968106759, 968841805, 969576708, 970311468, 971046086,
	971780561, 972514894, 973249083, 973983129, 974717032, 975450791,
	976184407, 976917879, 977651208, 978384393, 979117434, 979850331,
	980583084, 981315693, 982048157, 982780478, 983512653, 984244684,
	984976570, 985708311, 986439907, 987171359, 987902665, 988633825,
	989364841, 990095710, 990826435, 991557013, 992287446, 993017732,
	993747873, 994477868, 995207716, 995937418, 996666973, 997396382,
	998125644, 998854760, 999583728, 1000312549, 1001041224, 1001769751,
	1002498131, 1003226363, 1003954448, 1004682385, 1005410174, 1006137816,
	1006865310, 1007592655, 1008319852, 1009046901, 1009773802, 1010500554,
	1011227158, 1011953612, 1012679918, 1013406075, 1014132083, 1014857942,
	1015583652, 1016309212, 1017034623, 1017759884, 1018484996, 1019209957,
	1019934769, 1020659431, 1021383943, 1022108304, 1022832515, 1023556576,
	1024280486, 1025004246, 1025727855, 1026451313, 1027174620, 1027897776,
	1028620780, 1029343634, 1030066336, 1030788887, 1031511286, 1032233533,
	1032955629, 1033677572, 1034399364, 1035121003, 1035842490, 1036563825,
	1037285008, 1038006038, 1038726915, 1039447639, 1040168211, 1040888630,
	1041608895, 1042329007, 1043048967, 1043768772, 1044488424, 1045207923,
	1045927268, 1046646459, 1047365496, 1048084379, 1048803108, 1049521682,
	1050240103, 1050958369, 1051676480, 1052394436, 1053112238, 1053829885,
	1054547377, 1055264714, 1055981896, 1056698922, 1057415793, 1058132509,
	1058849068, 1059565473, 1060281721, 1060997813, 1061713749, 1062429530,
	1063145154, 1063860621, 1064575932, 1065291087, 1066006085, 1066720926,
	1067435610, 1068150137, 1068864507, 1069578720, 1070292776, 1071006674,
	1071720415, 1072433998, 1073147423, 1073860691, 1074573801, 1075286752,
	1075999546, 1076712181, 1077424658, 1078136976, 1078849136, 1079561137,
	1080272980, 1080984663, 1081696188, 1082407553, 1083118759, 1083829806,
	1084540694, 1085251422, 1085961990, 1086672399, 1087382648, 1088092737,
	1088802666, 1089512435, 1090222044, 1090931492, 1091640780, 1092349907,
	1093058874, 1093767680, 1094476325, 1095184809, 1095893132, 1096601294,
	1097309295, 1098017134, 1098724811, 1099432328, 1100139682, 1100846875,
	1101553905, 1102260774, 1102967481, 1103674025, 1104380407, 1105086627,
	1105792684, 1106498579, 1107204310, 1107909879, 1108615285, 1109320528,
	1110025608, 1110730525, 1111435278, 1112139868, 1112844294, 1113548557,
	1114252655, 1114956590, 1115660361, 1116363968, 1117067411, 1117770689,
	1118473803, 1119176753, 1119879538, 1120582158, 1121284613, 1121986904,
	1122689029, 1123390990, 1124092785, 1124794415, 1125495879, 1126197178,
	1126898311, 1127599279, 1128300081, 1129000716, 1129701186, 1130401490,
	1131101627, 1131801598, 1132501403, 1133201041, 1133900512, 1134599817,
	1135298954, 1135997925, 1136696729, 1137395365, 1138093834, 1138792136,
	1139490271, 1140188237, 1140886036, 1141583668, 1142281131, 1142978427,
	1143675554, 1144372513, 1145069304, 1145765926, 1146462380, 1147158665,
	1147854782, 1148550730, 1149246509, 1149942119, 1150637559, 1151332831,
	1152027933, 1152722866, 1153417629, 1154112223, 1154806646, 1155500900,
	1156194985, 1156888899, 1157582642, 1158276216, 1158969619, 1159662852,
	1160355915, 1161048806, 1161741527, 1162434077, 1163126456, 1163818664,
	1164510701, 1165202567, 1165894261, 1166585784, 1167277135, 1167968315,
	1168659322, 1169350158, 1170040822, 1170731314, 1171421634, 1172111781,
	1172801756, 1173491559, 1174181189, 1174870646, 1175559930, 1176249042,
	1176937981, 1177626746, 1178315338, 1179003757, 1179692003, 1180380075,
	1181067974, 1181755699, 1182443250, 1183130627, 1183817830, 1184504859,
	1185191714, 1185878394, 1186564900, 1187251232, 1187937389, 1188623371,
	1189309179, 1189994811, 1190680269, 1191365551, 1192050659, 1192735591,
	1193420347, 1194104928, 1194789333, 1195473563, 1196157617, 1196841495,
	1197525197, 1198208723, 1198892072, 1199575245, 1200258242, 1200941063,
	1201623706, 1202306173, 1202988463, 1203670577, 1204352513, 1205034272,
	1205715854, 1206397258, 1207078486, 1207759535, 1208440407, 1209121101,
	1209801618, 1210481956, 1211162117, 1211842099, 1212521903, 1213201529,
	1213880976, 1214560245, 1215239336, 1215918247, 1216596980, 1217275534,
	1217953908, 1218632104, 1219310120, 1219987957, 1220665615, 1221343093,
	1222020392, 1222697511, 1223374450, 1224051209, 1224727788, 1225404187,
	1226080405, 1226756444, 1227432302, 1228107979, 1228783476, 1229458792,
	1230133927, 1230808882, 1231483655, 1232158247, 1232832658, 1233506888,
	1234180936, 1234854803, 1235528488, 1236201992, 1236875314, 1237548453,
	1238221411, 1238894187, 1239566780, 1240239191, 1240911420, 1241583467,
	1242255330, 1242927011, 1243598509, 1244269825, 1244940957, 1245611906,
	1246282672, 1246953255, 1247623654, 1248293870, 1248963902, 1249633751,
	1250303416, 1250972897, 1251642194, 1252311307, 1252980235, 1253648980,
	1254317540, 1254985915, 1255654106, 1256322113, 1256989934, 1257657571,
	1258325023, 1258992289, 1259659371, 1260326267, 1260992978, 1261659504,
	1262325843, 1262991998, 1263657966, 1264323749, 1264989346, 1265654756,
	1266319981, 1266985019, 1267649871, 1268314537, 1268979016, 1269643308,
	1270307414, 1270971333, 1271635065, 1272298610, 1272961967, 1273625138,
	1274288121, 1274950917, 1275613526, 1276275946, 1276938179, 1277600225,
	1278262082, 1278923751, 1279585233, 1280246526, 1280907631, 1281568547,
	1282229275, 1282889814, 1283550165, 1284210327, 1284870300, 1285530084,
	1286189679, 1286849085, 1287508302, 1288167329, 1288826167, 1289484815,
	1290143274, 1290801543, 1291459622, 1292117511, 1292775210, 1293432719,
	1294090038, 1294747166, 1295404104, 1296060852, 1296717409, 1297373775,
	1298029950, 1298685935, 1299341728, 1299997331, 1300652742, 1301307962,
	1301962990, 1302617827, 1303272473, 1303926927, 1304581189, 1305235259,
	1305889137, 1306542823, 1307196317, 1307849619, 1308502729, 1309155646,
	1309808370, 1310460902, 1311113241, 1311765387, 1312417341, 1313069101,
	1313720668, 1314372042, 1315023223, 1315674210, 1316325004, 1316975604,
	1317626011, 1318276224, 1318926243, 1319576067, 1320225698, 1320875135,
	1321524377, 1322173426, 1322822279, 1323470938, 1324119403, 1324767672,
	1325415747, 1326063627, 1326711312, 1327358802, 1328006097, 1328653196,
	1329300100, 1329946808, 1330593321, 1331239638, 1331885759, 1332531685,
	1333177414, 1333822948, 1334468285, 1335113426, 1335758370, 1336403119,
	1337047670, 1337692025, 1338336183, 1338980145, 1339623909, 1340267477,
	1340910847, 1341554020, 1342196996, 1342839775, 1343482356, 1344124739,
	1344766925, 1345408913, 1346050703, 1346692295, 1347333689, 1347974885,
	1348615883, 1349256682, 1349897283, 1350537685, 1351177889, 1351817894,
	1352457700, 1353097308, 1353736716, 1354375925, 1355014935, 1355653746,
	1356292358, 1356930770, 1357568982, 1358206995, 1358844808, 1359482421,
	1360119834, 1360757047, 1361394060, 1362030873, 1362667485, 1363303897,
	1363940109, 1364576120, 1365211930, 1365847540, 1366482949, 1367118156,
	1367753163, 1368387968, 1369022573, 1369656975, 1370291177, 1370925177,
	1371558975, 1372192572, 1372825967, 1373459159, 1374092150, 1374724939,
	1375357526, 1375989910, 1376622092, 1377254072, 1377885849, 1378517423,
	1379148795, 1379779963, 1380410929, 1381041692, 1381672252, 1382302608,
	1382932762, 1383562711, 1384192458, 1384822001, 1385451340, 1386080475,
	1386709407, 1387338134, 1387966658, 1388594977, 1389223093, 1389851003,
	1390478710, 1391106212, 1391733509, 1392360602, 1392987490, 1393614173,
	1394240651, 1394866924, 1395492992, 1396118855, 1396744512, 1397369964,
	1397995211, 1398620252, 1399245087, 1399869716, 1400494140, 1401118357,
	1401742369, 1402366174, 1402989773, 1403613166, 1404236352, 1404859332,
	1405482105, 1406104672, 1406727032, 1407349184, 1407971130, 1408592869,
	1409214401, 1409835725, 1410456842, 1411077752, 1411698454, 1412318948,
	1412939235, 1413559314, 1414179185, 1414798848, 1415418303, 1416037550,
	1416656588, 1417275418, 1417894040, 1418512453, 1419130658, 1419748654,
	1420366441, 1420984019, 1421601389, 1422218549, 1422835500, 1423452242,
	1424068774, 1424685097, 1425301211, 1425917114, 1426532809, 1427148293,
	1427763567, 1428378632, 1428993486, 1429608130, 1430222564, 1430836788,
	1431450801, 1432064604, 1432678196, 1433291577, 1433904748, 1434517708,
	1435130456, 1435742994, 1436355321, 1436967436, 1437579340, 1438191032,
	1438802513, 1439413783, 1440024841, 1440635687, 1441246321, 1441856743,
	1442466953, 1443076951, 1443686736, 1444296310, 1444905671, 1445514819,
	1446123755, 1446732478, 1447340988, 1447949286, 1448557371, 1449165242,
	1449772901, 1450380346, 1450987578, 1451594596, 1452201401, 1452807993,
	1453414371, 1454020535, 1454626485, 1455232221, 1455837743, 1456443051,
	1457048145, 1457653025, 1458257690, 1458862141, 1459466378, 1460070399,
	1460674206, 1461277798, 1461881175, 1462484337, 1463087285, 1463690016,
	1464292533, 1464894834, 1465496920, 1466098791, 1466700445, 1467301884,
	1467903108, 1468504115, 1469104906, 1469705482, 1470305841, 1470905984,
	1471505910, 1472105620, 1472705114, 1473304391, 1473903452, 1474502295,
	1475100922, 1475699332, 1476297525, 1476895501, 1477493259, 1478090800,
	1478688124, 1479285231, 1479882119, 1480478791, 1481075244, 1481671480,
	1482267497, 1482863297, 1483458879, 1484054242, 1484649387, 1485244314,
	1485839023, 1486433513, 1487027784, 1487621836, 1488215670, 1488809285,
	1489402681, 1489995858, 1490588816, 1491181555, 1491774074, 1492366374,
	1492958454, 1493550315, 1494141956, 1494733378, 1495324579, 1495915561,
	1496506323, 1497096864, 1497687186, 1498277287, 1498867168, 1499456828,
	1500046268, 1500635487, 1501224486, 1501813264, 1502401821, 1502990157,
	1503578272, 1504166165, 1504753838, 1505341289, 1505928519, 1506515527,
	1507102314, 1507688880, 1508275223, 1508861345, 1509447244, 1510032922,
	1510618378, 1511203611, 1511788623, 1512373412, 1512957978, 1513542322,
	1514126443, 1514710342, 1515294018, 1515877471, 1516460701, 1517043708,
	1517626492, 1518209053, 1518791391, 1519373505, 1519955396, 1520537063,
	1521118507, 1521699726, 1522280722, 1522861495, 1523442043, 1524022367,
	1524602467, 1525182343, 1525761994, 1526341422, 1526920624, 1527499602,
	1528078356, 1528656884, 1529235188, 1529813267, 1530391121, 1530968750,
	1531546154, 1532123332, 1532700286, 1533277013, 1533853516, 1534429792,
	1535005843, 1535581669, 1536157268, 1536732642, 1537307789, 1537882711,
	1538457406, 1539031875, 1539606118, 1540180134, 1540753923, 1541327487,
	1541900823, 1542473933, 1543046816, 1543619471, 1544191900, 1544764102,
	1545336077, 1545907824, 1546479344, 1547050636, 1547621701, 1548192539,
	1548763149, 1549333530, 1549903685, 1550473611, 1551043309, 1551612779,
	1552182021, 1552751034, 1553319819, 1553888376, 1554456704, 1555024804,
	1555592675, 1556160317, 1556727730, 1557294914, 1557861869, 1558428596,
	1558995093, 1559561360, 1560127399, 1560693207, 1561258787, 1561824137,
	1562389257, 1562954147, 1563518807, 1564083238, 1564647438, 1565211408,
	1565775149, 1566338658, 1566901938, 1567464987, 1568027805, 1568590393,
	1569152751, 1569714877, 1570276773, 1570838437, 1571399871, 1571961073,
	1572522045, 1573082785, 1573643293, 1574203571, 1574763617, 1575323431,
	1575883013, 1576442364, 1577001483, 1577560370, 1578119025, 1578677448,
	1579235638, 1579793597, 1580351323, 1580908816, 1581466078, 1582023106,
	1582579902, 1583136465, 1583692796, 1584248893, 1584804757, 1585360389,
	1585915787, 1586470952, 1587025884, 1587580582, 1588135047, 1588689278,
	1589243275, 1589797039, 1590350569, 1590903865, 1591456927, 1592009756,
	1592562350, 1593114709, 1593666835, 1594218726, 1594770382, 1595321804,
	1595872992, 1596423945, 1596974663, 1597525146, 1598075394, 1598625407,
	1599175185, 1599724728, 1600274035, 1600823108, 1601371944, 1601920546,
	1602468911, 1603017041, 1603564936, 1604112594, 1604660017, 1605207203,
	1605754153, 1606300868, 1606847346, 1607393587, 1607939593, 1608485362,
	1609030894, 1609576190, 1610121249, 1610666071, 1611210656, 1611755004,
	1612299115, 1612842990, 1613386627, 1613930026, 1614473189, 1615016113,
	1615558801, 1616101250, 1616643463, 1617185437, 1617727173, 1618268672,
	1618809932, 1619350955, 1619891739, 1620432285, 1620972593, 1621512663,
	1622052493, 1622592086, 1623131440, 1623670555, 1624209431, 1624748068,
	1625286467, 1625824626, 1626362546, 1626900227, 1627437669, 1627974872,
	1628511835, 1629048558, 1629585042, 1630121286, 1630657291, 1631193056,
	1631728581, 1632263866, 1632798910, 1633333715, 1633868280, 1634402604,
	1634936688, 1635470531, 1636004134, 1636537496, 1637070617, 1637603498,
	1638136138, 1638668537, 1639200695, 1639732612, 1640264288, 1640795723,
	1641326916, 1641857868, 1642388578, 1642919047, 1643449274, 1643979260,
	1644509004, 1645038506, 1645567766, 1646096784, 1646625559, 1647154093,
	1647682385, 1648210434, 1648738240, 1649265805, 1649793126, 1650320206,
	1650847042, 1651373635, 1651899986, 1652426094, 1652951959, 1653477580,
	1654002959, 1654528094, 1655052986, 1655577635, 1656102040, 1656626201,
	1657150119, 1657673793, 1658197223, 1658720410, 1659243352, 1659766051,
	1660288505, 1660810715, 1661332681, 1661854403, 1662375880, 1662897113,
	1663418101, 1663938844, 1664459343, 1664979597, 1665499606, 1666019371,
	1666538890, 1667058164, 1667577193, 1668095977, 1668614515, 1669132808,
	1669650855, 1670168657, 1670686214, 1671203524, 1671720589, 1672237408,
	1672753981, 1673270308, 1673786389, 1674302224, 1674817812, 1675333154,
	1675848250, 1676363100, 1676877702, 1677392059, 1677906168, 1678420031,
	1678933647, 1679447016, 1679960138, 1680473013, 1680985640, 1681498021,
	1682010154, 1682522040, 1683033678, 1683545069, 1684056213, 1684567108,
	1685077756, 1685588156, 1686098309, 1686608213, 1687117869, 1687627277,
	1688136437, 1688645348, 1689154012, 1689662426, 1690170593, 1690678511,
	1691186180, 1691693600, 1692200772, 1692707694, 1693214368, 1693720793,
	1694226968, 1694732895, 1695238572, 1695744000, 1696249179, 1696754108,
	1697258787, 1697763217, 1698267397, 1698771328, 1699275009, 1699778439,
	1700281620, 1700784551, 1701287231, 1701789662, 1702291842, 1702793771,
	1703295451, 1703796879, 1704298058, 1704798985, 1705299662, 1705800088,
	1706300263, 1706800187, 1707299861, 1707799283, 1708298454, 1708797373,
	1709296042, 1709794459, 1710292625, 1710790539, 1711288201, 1711785612,
	1712282771, 1712779678, 1713276333, 1713772737, 1714268888, 1714764787,
	1715260434, 1715755829, 1716250971, 1716745861, 1717240499, 1717734884,
	1718229016, 1718722895, 1719216522, 1719709896, 1720203017, 1720695886,
	1721188501, 1721680862, 1722172971, 1722664827, 1723156429, 1723647777,
	1724138873, 1724629714, 1725120302, 1725610636, 1726100717, 1726590543,
	1727080116, 1727569435, 1728058499, 1728547310, 1729035866, 1729524168,
	1730012216, 1730500009, 1730987548, 1731474832, 1731961861, 1732448636,
	1732935156, 1733421421, 1733907431, 1734393186, 1734878686, 1735363931,
	1735848921, 1736333655, 1736818134, 1737302358, 1737786326, 1738270039,
	1738753496, 1739236697, 1739719642, 1740202332, 1740684765, 1741166943,
	1741648865, 1742130530, 1742611939, 1743093092, 1743573989, 1744054629,
	1744535013, 1745015140, 1745495010, 1745974624, 1746453981, 1746933081,
	1747411924, 1747890510, 1748368839, 1748846911, 1749324726, 1749802284,
	1750279584, 1750756627, 1751233412, 1751709940, 1752186210, 1752662222,
	1753137977, 1753613474, 1754088713, 1754563694, 1755038417, 1755512881,
	1755987088, 1756461037, 1756934727, 1757408158, 1757881331, 1758354246,
	1758826902, 1759299300, 1759771438, 1760243318, 1760714939, 1761186301,
	1761657404, 1762128248, 1762598833, 1763069159, 1763539225, 1764009032,
	1764478579, 1764947867, 1765416896, 1765885665, 1766354174, 1766822423,
	1767290413, 1767758142, 1768225612, 1768692821, 1769159771, 1769626460,
	1770092889, 1770559057, 1771024966, 1771490613, 1771956001, 1772421127,
	1772885993, 1773350599, 1773814943, 1774279027, 1774742849, 1775206411,
	1775669711, 1776132751, 1776595529, 1777058046, 1777520301, 1777982295,
	1778444028, 1778905499, 1779366709, 1779827656, 1780288343, 1780748767,
	1781208929, 1781668829, 1782128468, 1782587844, 1783046958, 1783505810,
	1783964399, 1784422727, 1784880791, 1785338594, 1785796133, 1786253410,
	1786710425, 1787167176, 1787623665, 1788079891, 1788535854, 1788991553,
	1789446990, 1789902164, 1790357074, 1790811721, 1791266105, 1791720225,
	1792174082, 1792627675, 1793081004, 1793534070, 1793986872, 1794439410,
	1794891684, 1795343695, 1795795441, 1796246923, 1796698141, 1797149095,
	1797599784, 1798050209, 1798500370, 1798950266, 1799399897, 1799849264,
	1800298367, 1800747204, 1801195777, 1801644084, 1802092127, 1802539905,
	1802987417, 1803434665, 1803881647, 1804328364, 1804774816, 1805221002,
	1805666922, 1806112577, 1806557967, 1807003091, 1807447949, 1807892541,
	1808336867, 1808780928, 1809224722, 1809668250, 1810111512, 1810554508,
	1810997238, 1811439701, 1811881898, 1812323829, 1812765493, 1813206890,
	1813648021, 1814088884, 1814529482, 1814969812, 1815409875, 1815849671,
	1816289201, 1816728463, 1817167458, 1817606186, 1818044646, 1818482839,
	1818920765, 1819358423, 1819795813, 1820232936, 1820669791, 1821106379,
	1821542698, 1821978750, 1822414534, 1822850049, 1823285297, 1823720277,
	1824154988, 1824589431, 1825023606, 1825457512, 1825891150, 1826324519,
	1826757620, 1827190452, 1827623015, 1828055309, 1828487335, 1828919092,
	1829350580, 1829781798, 1830212748, 1830643428, 1831073840, 1831503982,
	1831933854, 1832363457, 1832792791, 1833221855, 1833650650, 1834079174,
	1834507430, 1834935415, 1835363130, 1835790576, 1836217751, 1836644657,
	1837071292, 1837497657, 1837923752, 1838349577, 1838775131, 1839200415,
	1839625429, 1840050171, 1840474644, 1840898845, 1841322776, 1841746436,
	1842169825, 1842592943, 1843015791, 1843438367, 1843860672, 1844282706,
	1844704468, 1845125960, 1845547180, 1845968128, 1846388805, 1846809211,
	1847229345, 1847649207, 1848068798, 1848488116, 1848907163, 1849325938,
	1849744441, 1850162672, 1850580631, 1850998318, 1851415732, 1851832874,
	1852249744, 1852666342, 1853082667, 1853498719, 1853914499, 1854330006,
	1854745241, 1855160202, 1855574891, 1855989307, 1856403450, 1856817320,
	1857230917, 1857644241, 1858057291, 1858470069, 1858882573, 1859294803,
	1859706760, 1860118444, 1860529854, 1860940991, 1861351853, 1861762442,
	1862172758, 1862582799, 1862992566, 1863402060, 1863811279, 1864220225,
	1864628896, 1865037293, 1865445415, 1865853263, 1866260837, 1866668137,
	1867075162, 1867481912, 1867888387, 1868294588, 1868700514, 1869106166,
	1869511542, 1869916644, 1870321470, 1870726022, 1871130298, 1871534299,
	1871938025, 1872341475, 1872744651, 1873147550, 1873550175, 1873952523,
	1874354596, 1874756394, 1875157916, 1875559162, 1875960132, 1876360826,
	1876761244, 1877161387, 1877561253, 1877960843, 1878360157, 1878759195,
	1879157956, 1879556441, 1879954650, 1880352582, 1880750237, 1881147616,
	1881544718, 1881941544, 1882338093, 1882734365, 1883130360, 1883526078,
	1883921519, 1884316683, 1884711570, 1885106180, 1885500512, 1885894567,
	1886288345, 1886681846, 1887075069, 1887468014, 1887860682, 1888253072,
	1888645185, 1889037019, 1889428576, 1889819855, 1890210856, 1890601579,
	1890992025, 1891382192, 1891772080, 1892161691, 1892551023, 1892940077,
	1893328853, 1893717350, 1894105569, 1894493509, 1894881170, 1895268553,
	1895655657, 1896042482, 1896429028, 1896815296, 1897201284, 1897586994,
	1897972424, 1898357576, 1898742448, 1899127041, 1899511354, 1899895388,
	1900279143, 1900662618, 1901045814, 1901428730, 1901811367, 1902193724,
	1902575801, 1902957598, 1903339116, 1903720353, 1904101311, 1904481988,
	1904862386, 1905242503, 1905622340, 1906001897, 1906381173, 1906760169,
	1907138885, 1907517320, 1907895475, 1908273349, 1908650943, 1909028255,
	1909405287, 1909782039, 1910158509, 1910534698, 1910910607, 1911286234,
	1911661580, 1912036645, 1912411429, 1912785932, 1913160153, 1913534093,
	1913907752, 1914281129, 1914654225, 1915027039, 1915399571, 1915771822,
	1916143791, 1916515478, 1916886883, 1917258006, 1917628848, 1917999407,
	1918369684, 1918739679, 1919109392, 1919478823, 1919847971, 1920216837,
	1920585421, 1920953722, 1921321741, 1921689477, 1922056931, 1922424101,
	1922790989, 1923157595, 1923523917, 1923889957, 1924255713, 1924621187,
	1924986378, 1925351285, 1925715910, 1926080251, 1926444308, 1926808083,
	1927171574, 1927534782, 1927897706, 1928260347, 1928622704, 1928984777,
	1929346567, 1929708073, 1930069296, 1930430234, 1930790888, 1931151259,
	1931511346, 1931871148, 1932230666, 1932589901, 1932948850, 1933307516,
	1933665898, 1934023994, 1934381807, 1934739335, 1935096579, 1935453537,
	1935810212, 1936166601, 1936522706, 1936878526, 1937234061, 1937589312,
	1937944277, 1938298957, 1938653352, 1939007462, 1939361287, 1939714827,
	1940068082, 1940421051, 1940773735, 1941126133, 1941478246, 1941830073,
	1942181615, 1942532871, 1942883841, 1943234526, 1943584925, 1943935038,
	1944284865, 1944634406, 1944983662, 1945332631, 1945681314, 1946029711,
	1946377821, 1946725646, 1947073184, 1947420436, 1947767401, 1948114080,
	1948460473, 1948806579, 1949152398, 1949497931, 1949843177, 1950188136,
	1950532808, 1950877194, 1951221292, 1951565104, 1951908628, 1952251866,
	1952594816, 1952937480, 1953279856, 1953621944, 1953963746, 1954305260,
	1954646487, 1954987426, 1955328077, 1955668442, 1956008518, 1956348307,
	1956687808, 1957027021, 1957365947, 1957704585, 1958042934, 1958380996,
	1958718770, 1959056256, 1959393453, 1959730363, 1960066984, 1960403317,
	1960739361, 1961075118, 1961410586, 1961745765, 1962080656, 1962415258,
	1962749572, 1963083597, 1963417333, 1963750781, 1964083940, 1964416810,
	1964749391, 1965081683, 1965413686, 1965745400, 1966076825, 1966407960,
	1966738807, 1967069364, 1967399632, 1967729611, 1968059300, 1968388700,
	1968717811, 1969046631, 1969375163, 1969703404, 1970031356, 1970359018,
	1970686391, 1971013474, 1971340266, 1971666769, 1971992982, 1972318905,
	1972644537, 1972969880, 1973294933, 1973619695, 1973944167, 1974268349,
	1974592240, 1974915841, 1975239151, 1975562171, 1975884901, 1976207340,
	1976529488, 1976851346, 1977172912, 1977494188, 1977815174, 1978135868,
	1978456271, 1978776384, 1979096205, 1979415736, 1979734975, 1980053923,
	1980372580, 1980690945, 1981009020, 1981326803, 1981644294, 1981961495,
	1982278403, 1982595021, 1982911346, 1983227380, 1983543122, 1983858573,
	1984173732, 1984488599, 1984803174, 1985117457, 1985431448, 1985745148,
	1986058555, 1986371670, 1986684493, 1986997024, 1987309263, 1987621209,
	1987932863, 1988244225, 1988555294, 1988866071, 1989176555, 1989486747,
	1989796646, 1990106253, 1990415567, 1990724588, 1991033316, 1991341752,
	1991649894, 1991957744, 1992265301, 1992572565, 1992879536, 1993186213,
	1993492598, 1993798689, 1994104487, 1994409992, 1994715204, 1995020122,
	1995324747, 1995629078, 1995933116, 1996236860, 1996540311, 1996843468,
	1997146332, 1997448901, 1997751177, 1998053159, 1998354848, 1998656242,
	1998957343, 1999258149, 1999558661, 1999858880, 2000158804, 2000458434,
	2000757770, 2001056812, 2001355559, 2001654012, 2001952171, 2002250035,
	2002547605, 2002844880, 2003141861, 2003438547, 2003734938, 2004031035,
	2004326837, 2004622344, 2004917557, 2005212474, 2005507097, 2005801424,
	2006095457, 2006389195, 2006682638, 2006975785, 2007268637, 2007561194,
	2007853456, 2008145423, 2008437094, 2008728470, 2009019551, 2009310335,
	2009600825, 2009891019, 2010180917, 2010470520, 2010759827, 2011048838,
	2011337554, 2011625974, 2011914097, 2012201925, 2012489458, 2012776694,
	2013063634, 2013350278, 2013636626, 2013922677, 2014208433, 2014493892,
	2014779056, 2015063922, 2015348493, 2015632767, 2015916744, 2016200426,
	2016483810, 2016766898, 2017049690, 2017332185, 2017614383, 2017896284,
	2018177889, 2018459196, 2018740207, 2019020921, 2019301339, 2019581459,
	2019861282, 2020140808, 2020420037, 2020698969, 2020977603, 2021255941,
	2021533981, 2021811724, 2022089169, 2022366318, 2022643168, 2022919722,
	2023195977, 2023471935, 2023747596, 2024022959, 2024298024, 2024572792,
	2024847262, 2025121434, 2025395308, 2025668884, 2025942163, 2026215143,
	2026487826, 2026760210, 2027032297, 2027304085, 2027575575, 2027846767,
	2028117661, 2028388256, 2028658553, 2028928552, 2029198252, 2029467654,
	2029736758, 2030005563, 2030274069, 2030542277, 2030810186, 2031077796,
	2031345108, 2031612121, 2031878836, 2032145251, 2032411368, 2032677185,
	2032942704, 2033207924, 2033472845, 2033737466, 2034001789, 2034265812,
	2034529536, 2034792961, 2035056087, 2035318914, 2035581441, 2035843669,
	2036105597, 2036367226, 2036628556, 2036889585, 2037150316, 2037410747,
	2037670878, 2037930709, 2038190241, 2038449473, 2038708405, 2038967037,
	2039225370, 2039483402, 2039741135, 2039998568, 2040255700, 2040512533,
	2040769065, 2041025298, 2041281230, 2041536862, 2041792194, 2042047225,
	2042301956, 2042556387, 2042810517, 2043064347, 2043317877, 2043571106,
	2043824034, 2044076662, 2044328989, 2044581016, 2044832742, 2045084167,
	2045335291, 2045586115, 2045836637, 2046086859, 2046336780, 2046586400,
	2046835719, 2047084737, 2047333454, 2047581870, 2047829984, 2048077798,
	2048325310, 2048572521, 2048819431, 2049066039, 2049312347, 2049558352,
	2049804057, 2050049459, 2050294561, 2050539360, 2050783859, 2051028055,
	2051271950, 2051515544, 2051758835, 2052001825, 2052244513, 2052486899,
	2052728984, 2052970766, 2053212247, 2053453425, 2053694302, 2053934876,
	2054175149, 2054415119, 2054654787, 2054894153, 2055133217, 2055371979,
	2055610438, 2055848595, 2056086450, 2056324002, 2056561252, 2056798199,
	2057034844, 2057271187, 2057507226, 2057742964, 2057978398, 2058213530,
	2058448359, 2058682886, 2058917110, 2059151031, 2059384649, 2059617964,
	2059850976, 2060083686, 2060316092, 2060548195, 2060779996, 2061011493,
	2061242687, 2061473578, 2061704166, 2061934451, 2062164432, 2062394110,
	2062623485, 2062852556, 2063081324, 2063309789, 2063537950, 2063765808,
	2063993362, 2064220613, 2064447560, 2064674203, 2064900543, 2065126579,
	2065352312, 2065577741, 2065802865, 2066027686, 2066252204, 2066476417,
	2066700326, 2066923932, 2067147233, 2067370231, 2067592924, 2067815314,
	2068037399, 2068259180, 2068480657, 2068701830, 2068922698, 2069143262,
	2069363522, 2069583478, 2069803129, 2070022476, 2070241518, 2070460256,
	2070678690, 2070896818, 2071114643, 2071332162, 2071549378, 2071766288,
	2071982894, 2072199195, 2072415191, 2072630882, 2072846269, 2073061351,
	2073276128, 2073490600, 2073704767, 2073918629, 2074132186, 2074345438,
	2074558385, 2074771027, 2074983363, 2075195395, 2075407121, 2075618543,
	2075829658, 2076040469, 2076250974, 2076461174, 2076671069, 2076880658,
	2077089941, 2077298920, 2077507592, 2077715959, 2077924021, 2078131777,
	2078339227, 2078546372, 2078753211, 2078959744, 2079165972, 2079371894,
	2079577510, 2079782820, 2079987824, 2080192522, 2080396915, 2080601001,
	2080804782, 2081008256, 2081211425, 2081414287, 2081616843, 2081819093,
	2082021037, 2082222675, 2082424006, 2082625031, 2082825750, 2083026163,
	2083226269, 2083426069, 2083625562, 2083824749, 2084023630, 2084222204,
	2084420472, 2084618433, 2084816087, 2085013435, 2085210476, 2085407210,
	2085603638, 2085799759, 2085995574, 2086191081, 2086386282, 2086581176,
	2086775763, 2086970043, 2087164016, 2087357682, 2087551041, 2087744094,
	2087936839, 2088129277, 2088321408, 2088513232, 2088704749, 2088895958,
	2089086860, 2089277456, 2089467743, 2089657724, 2089847397, 2090036763,
	2090225821, 2090414572, 2090603016, 2090791152, 2090978981, 2091166502,
	2091353716, 2091540622, 2091727220, 2091913511, 2092099494, 2092285170,
	2092470538, 2092655598, 2092840350, 2093024794, 2093208931, 2093392760,
	2093576281, 2093759494, 2093942399, 2094124996, 2094307285, 2094489267,
	2094670940, 2094852305, 2095033362, 2095214111, 2095394551, 2095574684,
	2095754508, 2095934025, 2096113233, 2096292132, 2096470724, 2096649007,
	2096826981, 2097004648, 2097182005, 2097359055, 2097535796, 2097712228,
	2097888352, 2098064168, 2098239675, 2098414873, 2098589763, 2098764344,
	2098938617, 2099112580, 2099286235, 2099459582, 2099632619, 2099805348,
	2099977768, 2100149879, 2100321681, 2100493174, 2100664359, 2100835234,
	2101005801, 2101176058, 2101346007, 2101515646, 2101684977, 2101853998,
	2102022710, 2102191113, 2102359207, 2102526992, 2102694467, 2102861633,
	2103028490, 2103195038, 2103361276, 2103527205, 2103692825, 2103858135,
	2104023136, 2104187828, 2104352210, 2104516282, 2104680045, 2104843498,
	2105006642, 2105169477, 2105332001, 2105494216, 2105656122, 2105817718,
	2105979004, 2106139980, 2106300646, 2106461003, 2106621050, 2106780787,
	2106940215, 2107099332, 2107258140, 2107416638, 2107574825, 2107732703,
	2107890271, 2108047529, 2108204476, 2108361114, 2108517442, 2108673459,
	2108829167, 2108984564, 2109139651, 2109294428, 2109448895, 2109603051,
	2109756898, 2109910434, 2110063659, 2110216575, 2110369180, 2110521474,
	2110673458, 2110825132, 2110976496, 2111127548, 2111278291, 2111428723,
	2111578844, 2111728655, 2111878155, 2112027345, 2112176224, 2112324793,
	2112473050, 2112620998, 2112768634, 2112915960, 2113062975, 2113209679,
	2113356072, 2113502155, 2113647927, 2113793388, 2113938538, 2114083377,
	2114227905, 2114372122, 2114516029, 2114659624, 2114802908, 2114945882,
	2115088544, 2115230895, 2115372935, 2115514664, 2115656082, 2115797189,
	2115937985, 2116078469, 2116218642, 2116358504, 2116498055, 2116637294,
	2116776223, 2116914839, 2117053145, 2117191139, 2117328822, 2117466193,
	2117603253, 2117740002, 2117876439, 2118012565, 2118148379, 2118283881,
	2118419073, 2118553952, 2118688520, 2118822776, 2118956721, 2119090354,
	2119223676, 2119356686, 2119489384, 2119621770, 2119753845, 2119885608,
	2120017059, 2120148198, 2120279026, 2120409542, 2120539746, 2120669638,
	2120799218, 2120928486, 2121057442, 2121186087, 2121314419, 2121442440,
	2121570148, 2121697544, 2121824629, 2121951401, 2122077861, 2122204010,
	2122329846, 2122455370, 2122580581, 2122705481, 2122830069, 2122954344,
	2123078307, 2123201958, 2123325296, 2123448322, 2123571036, 2123693438,
	2123815527, 2123937304, 2124058769, 2124179921, 2124300761, 2124421288,
	2124541503, 2124661406, 2124780996, 2124900274, 2125019239, 2125137891,
	2125256231, 2125374259, 2125491973, 2125609376, 2125726465, 2125843242,
	2125959707, 2126075858, 2126191698, 2126307224, 2126422438, 2126537338,
	2126651927, 2126766202, 2126880165, 2126993814, 2127107151, 2127220176,
	2127332887, 2127445285, 2127557371, 2127669144, 2127780603, 2127891750,
	2128002584, 2128113105, 2128223313, 2128333208, 2128442790, 2128552059,
	2128661015, 2128769658, 2128877987, 2128986004, 2129093708, 2129201098,
	2129308175, 2129414939, 2129521390, 2129627528, 2129733353, 2129838864,
	2129944062, 2130048947, 2130153519, 2130257777, 2130361722, 2130465354,
	2130568672, 2130671677, 2130774369, 2130876747, 2130978812, 2131080564,
	2131182002, 2131283127, 2131383938, 2131484436, 2131584620, 2131684491,
	2131784048, 2131883292, 2131982222, 2132080839, 2132179142, 2132277132,
	2132374808, 2132472170, 2132569219, 2132665954, 2132762376, 2132858484,
	2132954278, 2133049758, 2133144925, 2133239778, 2133334317, 2133428543,
	2133522455, 2133616053, 2133709337, 2133802308, 2133894964, 2133987307,
	2134079336, 2134171051, 2134262452, 2134353540, 2134444313, 2134534773,
	2134624918, 2134714750, 2134804268, 2134893472, 2134982361, 2135070937,
	2135159199, 2135247147, 2135334781, 2135422100, 2135509106, 2135595798,
	2135682175, 2135768239, 2135853988, 2135939423, 2136024544, 2136109351,
	2136193844, 2136278023, 2136361887, 2136445437, 2136528673, 2136611595,
	2136694203, 2136776496, 2136858475, 2136940140, 2137021491, 2137102527,
	2137183249, 2137263657, 2137343750, 2137423529, 2137502994, 2137582144,
	2137660980, 2137739501, 2137817709, 2137895601, 2137973180, 2138050444,
	2138127393, 2138204028, 2138280349, 2138356355, 2138432046, 2138507423,
	2138582486, 2138657234, 2138731668, 2138805787, 2138879591, 2138953081,
	2139026256, 2139099117, 2139171663, 2139243895, 2139315812, 2139387414,
	2139458701, 2139529674, 2139600333, 2139670676, 2139740705, 2139810420,
	2139879819, 2139948904, 2140017674, 2140086130, 2140154271, 2140222097,
	2140289608, 2140356804, 2140423686, 2140490253, 2140556505, 2140622442,
	2140688065, 2140753372, 2140818365, 2140883043, 2140947406, 2141011454,
	2141075188, 2141138606, 2141201710, 2141264498, 2141326972, 2141389131,
	2141450975, 2141512504, 2141573718, 2141634617, 2141695201, 2141755470,
	2141815424, 2141875063, 2141934387, 2141993396, 2142052090, 2142110469,
	2142168533, 2142226282, 2142283716, 2142340835, 2142397639, 2142454128,
	2142510301, 2142566160, 2142621703, 2142676931, 2142731845, 2142786443,
	2142840726, 2142894693, 2142948346, 2143001683, 2143054706, 2143107413,
	2143159805, 2143211882, 2143263643, 2143315089, 2143366221, 2143417036,
	2143467537, 2143517723, 2143567593, 2143617148, 2143666387, 2143715312,
	2143763921, 2143812215, 2143860193, 2143907857, 2143955205, 2144002237,
	2144048955, 2144095357, 2144141443, 2144187215, 2144232671, 2144277811,
	2144322637, 2144367147, 2144411341, 2144455221, 2144498784, 2144542033,
	2144584966, 2144627584, 2144669886, 2144711873, 2144753544, 2144794900,
	2144835941, 2144876666, 2144917075, 2144957170, 2144996948, 2145036412,
	2145075559, 2145114392, 2145152909, 2145191110, 2145228996, 2145266566,
	2145303821, 2145340761, 2145377385, 2145413693, 2145449686, 2145485363,
	2145520725, 2145555771, 2145590502, 2145624917, 2145659017, 2145692801,
	2145726269, 2145759422, 2145792259, 2145824781, 2145856987, 2145888878,
	2145920453, 2145951712, 2145982656, 2146013284, 2146043597, 2146073594,
	2146103275, 2146132641, 2146161691, 2146190425, 2146218844, 2146246947,
	2146274735, 2146302207, 2146329363, 2146356204, 2146382728, 2146408938,
	2146434831, 2146460409, 2146485671, 2146510618, 2146535249, 2146559564,
	2146583563, 2146607247, 2146630615, 2146653668, 2146676404, 2146698825,
	2146720931, 2146742720, 2146764194, 2146785352, 2146806194, 2146826721,
	2146846932, 2146866827, 2146886407, 2146905670, 2146924618, 2146943251,
	2146961567, 2146979568, 2146997253, 2147014622, 2147031675, 2147048413,
	2147064835, 2147080941, 2147096732, 2147112206, 2147127365, 2147142208,
	2147156736, 2147170947, 2147184843, 2147198423, 2147211687, 2147224635,
	2147237268, 2147249585, 2147261586, 2147273271, 2147284640, 2147295694,
	2147306432, 2147316854, 2147326960, 2147336750, 2147346225, 2147355384,
	2147364227, 2147372754, 2147380965, 2147388861, 2147396441, 2147403705,
	2147410653, 2147417285, 2147423602, 2147429602, 2147435287, 2147440656,
	2147445709, 2147450447, 2147454868, 2147458974, 2147462764, 2147466238,
	2147469396, 2147472239, 2147474765, 2147476976, 2147478871, 2147480450,
	2147481714, 2147482661, 2147483293, 2147483609,
}

// SineWindows indexes the windows by log2(blockSize) - BlockMinBits.
var SineWindows = [7][]int32{
	sineWindow64[:],
	sineWindow128[:],
	sineWindow256[:],
	sineWindow512[:],
	sineWindow1024[:],
	sineWindow2048[:],
	sineWindow4096[:],
}
